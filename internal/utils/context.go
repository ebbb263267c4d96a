// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace ids,
// HTTP response writing, HTTP client initialization and the JSON codec
// of the gRPC transport.
package utils

import (
	"context"
)

// TraceIDHeader carries the trace id over HTTP. gRPC uses the lower-cased
// form as a metadata key.
const TraceIDHeader = "X-Trace-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the trace id of a request in the context.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id from the context.
//
// Returns the trace id and an ok flag:
//   - ok == true: a non-empty trace id is found
//   - ok == false: value is missing, empty or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
