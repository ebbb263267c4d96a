package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("server unavailable")
	ErrTimeout             = errors.New("request timed out")
	ErrUnexpectedResponse  = errors.New("unexpected response")

	ErrInvalidAddress       = errors.New("invalid server address")
	ErrUnsupportedTransport = errors.New("unsupported transport")
)
