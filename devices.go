package smsgateway

import "context"

// Device is a registered sending device. Timestamps are the gateway's
// ISO 8601 strings, passed through verbatim.
type Device struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	LastSeen  string  `json:"lastSeen"`
	DeletedAt *string `json:"deletedAt,omitempty"`
}

// ListDevices returns the devices registered for the account.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	var devices []Device
	err := c.client.Get(ctx, c.baseURL+"/devices", c.requestHeaders(false), &devices)
	return devices, err
}

// DeleteDevice removes a device registration.
func (c *Client) DeleteDevice(ctx context.Context, deviceID string) error {
	return c.client.Delete(ctx, c.baseURL+"/devices/"+deviceID, c.requestHeaders(false))
}
