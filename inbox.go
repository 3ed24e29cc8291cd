package smsgateway

import (
	"context"
	"time"
)

// MessagesExportRequest asks the gateway to export a device's inbox for a
// time window. Since and Until are serialized as RFC 3339 strings on the
// wire; callers work with time.Time.
type MessagesExportRequest struct {
	DeviceID string    `json:"deviceId"`
	Since    time.Time `json:"since"`
	Until    time.Time `json:"until"`
}

// ExportInbox requests an inbox export. The export itself is delivered
// asynchronously through the sms:received webhook.
func (c *Client) ExportInbox(ctx context.Context, request MessagesExportRequest) error {
	return c.client.Post(ctx, c.baseURL+"/inbox/export", c.requestHeaders(true), request, nil)
}
