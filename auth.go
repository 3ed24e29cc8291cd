package smsgateway

import "encoding/base64"

// AuthMethod selects how the client authenticates with the gateway. Use
// Credentials for username/password installations or BearerToken for a
// pre-issued scoped token (see Client.GenerateToken).
type AuthMethod interface {
	authorization() string
}

type basicAuth struct {
	login    string
	password string
}

func (a basicAuth) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(a.login+":"+a.password))
}

// Credentials authenticates with HTTP Basic auth.
func Credentials(login, password string) AuthMethod {
	return basicAuth{login: login, password: password}
}

type bearerAuth struct {
	token string
}

func (a bearerAuth) authorization() string {
	return "Bearer " + a.token
}

// BearerToken authenticates with a pre-obtained access token. The token is
// attached verbatim; the client never inspects or refreshes it.
func BearerToken(token string) AuthMethod {
	return bearerAuth{token: token}
}
