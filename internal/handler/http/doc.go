// Package http implements the HTTP/JSON transport of the slot validation
// service.
//
// It wires the chi router, the validation endpoints and the middleware
// chain (panic recovery, trace ids, access logging, gzip, CORS, request
// timeouts). Request bodies for the typed endpoints are checked against the
// embedded JSON Schemas before they are decoded and handed to the service
// layer. Every validation response is JSON regardless of the Accept header.
package http
