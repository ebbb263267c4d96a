package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrEmptyPayload          = errors.New("payload carries no request")

	ErrNoPayloadsProvided = errors.New("no payloads provided")
	ErrServerUnavailable  = errors.New("server unavailable")
	ErrServerFailure      = errors.New("server failed to validate the request")
)
