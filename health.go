package smsgateway

import "context"

// HealthStatus follows the RFC draft health-check levels.
type HealthStatus string

const (
	HealthStatusPass HealthStatus = "pass"
	HealthStatusWarn HealthStatus = "warn"
	HealthStatusFail HealthStatus = "fail"
)

// HealthCheck is a single named check inside a health response.
type HealthCheck struct {
	Description   string       `json:"description"`
	ObservedUnit  string       `json:"observedUnit"`
	ObservedValue int          `json:"observedValue"`
	Status        HealthStatus `json:"status"`
}

// HealthResponse is the gateway's health snapshot.
type HealthResponse struct {
	Status    HealthStatus           `json:"status"`
	Version   string                 `json:"version"`
	ReleaseID int                    `json:"releaseId"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck queries gateway health.
func (c *Client) HealthCheck(ctx context.Context) (HealthResponse, error) {
	var health HealthResponse
	err := c.client.Get(ctx, c.baseURL+"/health", c.requestHeaders(false), &health)
	return health, err
}
