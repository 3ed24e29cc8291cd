package smsgateway

import "context"

// SimSelectionMode controls which SIM card a multi-SIM device sends from.
type SimSelectionMode string

const (
	SimSelectionModeOSDefault  SimSelectionMode = "OSDefault"
	SimSelectionModeRoundRobin SimSelectionMode = "RoundRobin"
	SimSelectionModeRandom     SimSelectionMode = "Random"
)

// LimitPeriod is the window a sending rate limit applies to.
type LimitPeriod string

const (
	LimitPeriodDisabled  LimitPeriod = "Disabled"
	LimitPeriodPerMinute LimitPeriod = "PerMinute"
	LimitPeriodPerHour   LimitPeriod = "PerHour"
	LimitPeriodPerDay    LimitPeriod = "PerDay"
)

// MessagesSettings configures sending behavior on the device.
type MessagesSettings struct {
	SendIntervalMin  *int              `json:"send_interval_min,omitempty"`
	SendIntervalMax  *int              `json:"send_interval_max,omitempty"`
	LimitPeriod      *LimitPeriod      `json:"limit_period,omitempty"`
	LimitValue       *int              `json:"limit_value,omitempty"`
	SimSelectionMode *SimSelectionMode `json:"sim_selection_mode,omitempty"`
	LogLifetimeDays  *int              `json:"log_lifetime_days,omitempty"`
}

// WebhooksSettings configures webhook delivery from the device.
type WebhooksSettings struct {
	InternetRequired *bool   `json:"internet_required,omitempty"`
	RetryCount       *int    `json:"retry_count,omitempty"`
	SigningKey       *string `json:"signing_key,omitempty"`
}

// GatewaySettings configures the device's connection to the cloud gateway.
type GatewaySettings struct {
	CloudURL     *string `json:"cloud_url,omitempty"`
	PrivateToken *string `json:"private_token,omitempty"`
}

// EncryptionSettings configures end-to-end message encryption.
type EncryptionSettings struct {
	Passphrase *string `json:"passphrase,omitempty"`
}

// LogsSettings configures log retention on the device.
type LogsSettings struct {
	LifetimeDays *int `json:"lifetime_days,omitempty"`
}

// PingSettings configures the periodic system:ping webhook.
type PingSettings struct {
	IntervalSeconds *int `json:"interval_seconds,omitempty"`
}

// DeviceSettings is the full remote device configuration, used with
// UpdateSettings. Every group and field is optional on the wire.
type DeviceSettings struct {
	Messages   *MessagesSettings   `json:"messages,omitempty"`
	Webhooks   *WebhooksSettings   `json:"webhooks,omitempty"`
	Gateway    *GatewaySettings    `json:"gateway,omitempty"`
	Encryption *EncryptionSettings `json:"encryption,omitempty"`
	Logs       *LogsSettings       `json:"logs,omitempty"`
	Ping       *PingSettings       `json:"ping,omitempty"`
}

// DeviceSettingsPatch is a partial settings update, used with PatchSettings.
// Only the populated groups and fields reach the wire; everything else keeps
// its current value on the device. It is deliberately a distinct type from
// DeviceSettings so the full-update and partial-update contracts stay
// independently auditable.
type DeviceSettingsPatch struct {
	Messages   *MessagesSettings   `json:"messages,omitempty"`
	Webhooks   *WebhooksSettings   `json:"webhooks,omitempty"`
	Gateway    *GatewaySettings    `json:"gateway,omitempty"`
	Encryption *EncryptionSettings `json:"encryption,omitempty"`
	Logs       *LogsSettings       `json:"logs,omitempty"`
	Ping       *PingSettings       `json:"ping,omitempty"`
}

// GetSettings returns the current device settings.
func (c *Client) GetSettings(ctx context.Context) (DeviceSettings, error) {
	var settings DeviceSettings
	err := c.client.Get(ctx, c.baseURL+"/settings", c.requestHeaders(false), &settings)
	return settings, err
}

// UpdateSettings replaces the device settings with the given object.
func (c *Client) UpdateSettings(ctx context.Context, settings DeviceSettings) error {
	return c.client.Put(ctx, c.baseURL+"/settings", c.requestHeaders(true), settings, nil)
}

// PatchSettings applies a partial settings update.
func (c *Client) PatchSettings(ctx context.Context, patch DeviceSettingsPatch) error {
	return c.client.Patch(ctx, c.baseURL+"/settings", c.requestHeaders(true), patch, nil)
}
