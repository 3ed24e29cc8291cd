package smsgateway

import (
	"context"
	"net/url"
	"time"
)

// LogEntryPriority is the severity of a device log record.
type LogEntryPriority string

const (
	LogEntryPriorityDebug LogEntryPriority = "DEBUG"
	LogEntryPriorityInfo  LogEntryPriority = "INFO"
	LogEntryPriorityWarn  LogEntryPriority = "WARN"
	LogEntryPriorityError LogEntryPriority = "ERROR"
)

// LogEntry is one server-assigned log record from a device.
type LogEntry struct {
	ID        int64             `json:"id"`
	CreatedAt string            `json:"createdAt"`
	Module    string            `json:"module"`
	Priority  LogEntryPriority  `json:"priority"`
	Message   string            `json:"message"`
	Context   map[string]string `json:"context,omitempty"`
}

// GetLogs returns device log entries, optionally bounded by time. A zero
// from or to leaves the corresponding query parameter out entirely.
func (c *Client) GetLogs(ctx context.Context, from, to time.Time) ([]LogEntry, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(time.RFC3339))
	}

	u := c.baseURL + "/logs"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var entries []LogEntry
	err := c.client.Get(ctx, u, c.requestHeaders(false), &entries)
	return entries, err
}
