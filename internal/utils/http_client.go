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
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("/api/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance that asks for
// JSON responses and forwards the trace id found in a request's context as
// the X-Trace-ID header.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().SetHeader("Accept", "application/json")
	client.OnBeforeRequest(propagateTraceID)

	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
