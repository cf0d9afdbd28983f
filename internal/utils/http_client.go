package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithTracing(utils.NewUUIDGenerator())
//	resp, err := client.R().SetBody(payload).Post("user/add")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithTracing makes every request carry the [TraceIDHeader] header.
//
// A request that already sets the header is left untouched. Otherwise the
// trace id of the request context is used, and a new one is generated when
// the context has none.
func (c *HTTPClient) WithTracing(gen *UUIDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) != "" {
			return nil
		}

		traceID, ok := GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = gen.Generate()
		}
		r.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return c
}
