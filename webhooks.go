package smsgateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// WebHookEvent is the kind of event a webhook subscribes to.
type WebHookEvent string

const (
	WebHookEventSmsReceived  WebHookEvent = "sms:received"
	WebHookEventSmsSent      WebHookEvent = "sms:sent"
	WebHookEventSmsDelivered WebHookEvent = "sms:delivered"
	WebHookEventSmsFailed    WebHookEvent = "sms:failed"
	WebHookEventSystemPing   WebHookEvent = "system:ping"
)

// RegisterWebHookRequest registers a callback URL for an event. When ID is
// empty the gateway assigns one. DeviceID limits the subscription to a
// single device.
type RegisterWebHookRequest struct {
	ID       string       `json:"id,omitempty"`
	Event    WebHookEvent `json:"event"`
	URL      string       `json:"url"`
	DeviceID string       `json:"deviceId,omitempty"`
}

// WebHook is a registered webhook as the gateway reports it.
type WebHook struct {
	ID       string       `json:"id"`
	Event    WebHookEvent `json:"event"`
	URL      string       `json:"url"`
	DeviceID string       `json:"deviceId,omitempty"`
}

// ListWebhooks returns all registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]WebHook, error) {
	var webhooks []WebHook
	err := c.client.Get(ctx, c.baseURL+"/webhooks", c.requestHeaders(false), &webhooks)
	return webhooks, err
}

// RegisterWebhook registers a webhook and returns it with the server-assigned
// fields filled in.
func (c *Client) RegisterWebhook(ctx context.Context, request RegisterWebHookRequest) (WebHook, error) {
	var webhook WebHook
	err := c.client.Post(ctx, c.baseURL+"/webhooks", c.requestHeaders(true), request, &webhook)
	return webhook, err
}

// DeleteWebhook removes a webhook registration.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.client.Delete(ctx, c.baseURL+"/webhooks/"+webhookID, c.requestHeaders(false))
}

// Headers carried by signed webhook deliveries from a device.
const (
	SignatureHeader = "X-Signature"
	TimestampHeader = "X-Timestamp"
)

// ErrSignatureMismatch is returned by VerifyWebhookSignature when the
// payload does not match its signature.
var ErrSignatureMismatch = errors.New("webhook signature mismatch")

// SignWebhookPayload computes the hex-encoded HMAC-SHA256 signature of a
// webhook payload and its timestamp, keyed with the device's signing key
// (DeviceSettings.Webhooks.SigningKey).
func SignWebhookPayload(payload []byte, timestamp, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(payload)
	mac.Write([]byte(timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks an incoming webhook delivery against the
// signature and timestamp taken from the SignatureHeader and TimestampHeader
// request headers. The comparison is constant time.
func VerifyWebhookSignature(payload []byte, signature, timestamp, key string) error {
	expected := SignWebhookPayload(payload, timestamp, key)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}
