package smsgateway

import (
	"context"
	"net/url"
	"strconv"
)

// ProcessingState is the delivery state of a message or of a single
// recipient.
type ProcessingState string

const (
	ProcessingStatePending   ProcessingState = "Pending"
	ProcessingStateProcessed ProcessingState = "Processed"
	ProcessingStateSent      ProcessingState = "Sent"
	ProcessingStateDelivered ProcessingState = "Delivered"
	ProcessingStateFailed    ProcessingState = "Failed"
)

// Message is an outbound SMS request. PhoneNumbers must not be empty; the
// gateway rejects such requests, the client does not pre-validate them.
type Message struct {
	ID                 string   `json:"id,omitempty"`
	Message            string   `json:"message"`
	TTL                *uint64  `json:"ttl,omitempty"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	SimNumber          *uint8   `json:"simNumber,omitempty"`
	WithDeliveryReport *bool    `json:"withDeliveryReport,omitempty"`
}

// RecipientState is the delivery state of a message for one phone number.
type RecipientState struct {
	PhoneNumber string          `json:"phoneNumber"`
	State       ProcessingState `json:"state"`
	Error       *string         `json:"error,omitempty"`
}

// MessageState is the gateway-reported status of a sent message.
type MessageState struct {
	ID         string           `json:"id"`
	State      ProcessingState  `json:"state"`
	Recipients []RecipientState `json:"recipients"`
}

// SendOption customizes a single Send call.
type SendOption func(q *url.Values)

// SkipPhoneValidation asks the gateway to skip (or force) phone number
// validation for this message. When the option is not supplied, the
// parameter is omitted from the request entirely.
func SkipPhoneValidation(skip bool) SendOption {
	return func(q *url.Values) {
		q.Set("skipPhoneValidation", strconv.FormatBool(skip))
	}
}

// Send enqueues a message for delivery.
func (c *Client) Send(ctx context.Context, message Message, opts ...SendOption) (MessageState, error) {
	q := url.Values{}
	for _, opt := range opts {
		opt(&q)
	}

	u := c.baseURL + "/message"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var state MessageState
	err := c.client.Post(ctx, u, c.requestHeaders(true), message, &state)
	return state, err
}

// GetState returns the current delivery state of a previously sent message.
func (c *Client) GetState(ctx context.Context, messageID string) (MessageState, error) {
	var state MessageState
	err := c.client.Get(ctx, c.baseURL+"/message/"+messageID, c.requestHeaders(false), &state)
	return state, err
}
