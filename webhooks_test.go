package smsgateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignWebhookPayload(t *testing.T) {
	payload := []byte(`{"event":"sms:received","payload":{"message":"Hello"}}`)

	signature := SignWebhookPayload(payload, "1700000000", "signing-key")

	assert.Len(t, signature, 64)
	assert.Equal(t, signature, SignWebhookPayload(payload, "1700000000", "signing-key"))
	assert.NotEqual(t, signature, SignWebhookPayload(payload, "1700000001", "signing-key"))
	assert.NotEqual(t, signature, SignWebhookPayload(payload, "1700000000", "other-key"))
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"event":"sms:received"}`)
	signature := SignWebhookPayload(payload, "1700000000", "signing-key")

	assert.NoError(t, VerifyWebhookSignature(payload, signature, "1700000000", "signing-key"))

	tampered := append([]byte(nil), payload...)
	tampered[0] = '['
	assert.ErrorIs(t, VerifyWebhookSignature(tampered, signature, "1700000000", "signing-key"), ErrSignatureMismatch)
	assert.ErrorIs(t, VerifyWebhookSignature(payload, signature, "1700000001", "signing-key"), ErrSignatureMismatch)
	assert.ErrorIs(t, VerifyWebhookSignature(payload, "", "1700000000", "signing-key"), ErrSignatureMismatch)
}
