package models

import "encoding/json"

// ValidationResult is the outcome of a single slot validation call.
type ValidationResult struct {
	// Filled is true when every supplied value satisfied the constraint.
	Filled bool `json:"filled"`

	// PartiallyFilled is true when at least one value failed, or when the
	// constraint set cannot be satisfied at all (e.g. an empty allow-list).
	// Filled and PartiallyFilled are never both true.
	PartiallyFilled bool `json:"partially_filled"`

	// Trigger names the follow-up to invoke. Empty when Filled.
	Trigger string `json:"trigger"`

	// Parameters maps the configured key to either one SlotValue or an
	// ordered []SlotValue. Empty when nothing is carried forward.
	Parameters map[string]any `json:"parameters"`
}

// MarshalJSON makes sure "parameters" is always encoded as an object.
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	type plain ValidationResult
	if r.Parameters == nil {
		r.Parameters = map[string]any{}
	}
	return json.Marshal(plain(r))
}

// ErrorResponse is the body sent to clients when a request fails.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse with status "error".
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionRequest asks the server for its version over gRPC.
type VersionRequest struct{}

// VersionResponse carries the server version over gRPC.
type VersionResponse struct {
	Version string `json:"version"`
}
