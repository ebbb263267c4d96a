// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// slot validation server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings written into error
// response bodies for failures that have no sentinel error of their own.
// Keeping them in one place lets the client map a response back to the
// same wording the server produced.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded into the expected payload.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown paths and for known paths called
	// with an unsupported method.
	MsgNotFound = "not found"

	// MsgRequestTimeout is returned when a request exceeds the server's
	// request timeout.
	MsgRequestTimeout = "request timed out"

	// MsgServiceHealthy is the status reported by the health endpoint.
	MsgServiceHealthy = "ok"
)
