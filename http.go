package smsgateway

import "context"

// HTTPClient is the transport the Client delegates every network round trip
// to. Implementations serialize the body (when present), perform the request
// with the given headers and deserialize the response into out, which is a
// pointer to the expected response shape or nil when no body is expected.
//
// Any conforming implementation is interchangeable: the httpclient package
// ships a ready-made one on net/http, and tests substitute mocks. Retries,
// timeouts beyond ctx and connection pooling are transport concerns; the
// Client imposes no policy of its own and propagates transport errors
// unchanged.
type HTTPClient interface {
	Get(ctx context.Context, url string, headers map[string]string, out any) error
	Post(ctx context.Context, url string, headers map[string]string, in, out any) error
	Put(ctx context.Context, url string, headers map[string]string, in, out any) error
	Patch(ctx context.Context, url string, headers map[string]string, in, out any) error
	Delete(ctx context.Context, url string, headers map[string]string) error
}
