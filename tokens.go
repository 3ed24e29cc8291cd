package smsgateway

import "context"

// TokenRequest asks the gateway to issue a scoped bearer token. Scopes name
// the operations the token may be used for; TTL bounds its lifetime in
// seconds, with the gateway's default applying when unset.
type TokenRequest struct {
	Scopes []string `json:"scopes"`
	TTL    *uint64  `json:"ttl,omitempty"`
}

// TokenResponse is an issued bearer token. Pass AccessToken to BearerToken
// to build a client authenticating with it.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	TokenID     string `json:"tokenId"`
	ExpiresAt   string `json:"expiresAt"`
}

// GenerateToken issues a new scoped bearer token.
func (c *Client) GenerateToken(ctx context.Context, request TokenRequest) (TokenResponse, error) {
	var token TokenResponse
	err := c.client.Post(ctx, c.baseURL+"/auth/token", c.requestHeaders(true), request, &token)
	return token, err
}

// RevokeToken invalidates a previously issued token by its id.
func (c *Client) RevokeToken(ctx context.Context, tokenID string) error {
	return c.client.Delete(ctx, c.baseURL+"/auth/token/"+tokenID, c.requestHeaders(false))
}
