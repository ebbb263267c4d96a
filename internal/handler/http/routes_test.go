// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── helpers ───

func newTestServer(t *testing.T, cfg config.Server) *httptest.Server {
	t.Helper()
	h, err := NewHandler(newRealServices(t), cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeResult(t *testing.T, r io.Reader) models.ValidationResult {
	t.Helper()
	var res models.ValidationResult
	require.NoError(t, json.NewDecoder(r).Decode(&res))
	return res
}

func decodeError(t *testing.T, r io.Reader) models.ErrorResponse {
	t.Helper()
	var res models.ErrorResponse
	require.NoError(t, json.NewDecoder(r).Decode(&res))
	return res
}

// ─── validation endpoints ───

func TestRoutes_ValidateFinite(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	resp := post(t, srv, "/api/validate/finite", finitePayload)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	res := decodeResult(t, resp.Body)
	assert.True(t, res.Filled)
	assert.False(t, res.PartiallyFilled)
	assert.Equal(t, "", res.Trigger)
	assert.Equal(t, map[string]any{"ids_stated": []any{"COLLEGE"}}, res.Parameters)
}

func TestRoutes_ValidateNumeric(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	resp := post(t, srv, "/api/validate/numeric", numericPayload)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeResult(t, resp.Body)
	assert.False(t, res.Filled)
	assert.True(t, res.PartiallyFilled)
	assert.Equal(t, "invalid_age", res.Trigger)
	assert.Empty(t, res.Parameters)
}

func TestRoutes_ValidateDispatch(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	resp := post(t, srv, "/api/validate", finitePayload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeResult(t, resp.Body).Filled)

	resp = post(t, srv, "/api/validate", numericPayload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "invalid_age", decodeResult(t, resp.Body).Trigger)
}

func TestRoutes_BadRequests(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	tests := []struct {
		name        string
		path        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "schema violation on finite",
			path:        "/api/validate/finite",
			body:        `{"key": "ids_stated"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "JSON validation failed. Check logs...",
		},
		{
			name:        "numeric payload on finite endpoint",
			path:        "/api/validate/finite",
			body:        numericPayload,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "JSON validation failed. Check logs...",
		},
		{
			name:        "malformed JSON",
			path:        "/api/validate/numeric",
			body:        `{"key":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "malformed JSON",
		},
		{
			name:        "missing trigger",
			path:        "/api/validate/finite",
			body:        strings.Replace(finitePayload, `"invalid_ids_stated"`, `""`, 1),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid_trigger is required",
		},
		{
			name:        "constraint does not parse",
			path:        "/api/validate/numeric",
			body:        strings.Replace(numericPayload, `x>=18 and x<=30`, `x>`, 1),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "constraint is not a valid expression",
		},
		{
			name:        "unknown parser on dispatch",
			path:        "/api/validate",
			body:        `{"validation_parser": "date_entity"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "unknown validation_parser",
		},
		{
			name:        "wrong-typed field on dispatch",
			path:        "/api/validate",
			body:        strings.Replace(finitePayload, `"pick_first": false`, `"pick_first": "no"`, 1),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "JSON validation failed. Check logs...",
		},
		{
			name:        "wrong-typed field on finite",
			path:        "/api/validate/finite",
			body:        strings.Replace(finitePayload, `"pick_first": false`, `"pick_first": "no"`, 1),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "JSON validation failed. Check logs...",
		},
		{
			name:        "dispatch body that is not JSON",
			path:        "/api/validate",
			body:        `not json`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.path, tt.body)

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeError(t, resp.Body)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestRoutes_IgnoresAcceptHeader(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/validate/finite", strings.NewReader(finitePayload))
	require.NoError(t, err)
	req.Header.Set("Accept", "text/html")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

// ─── health & version ───

func TestRoutes_Health(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestRoutes_Version(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	resp, err := http.Get(srv.URL + "/api/version/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "1.2.3", string(body))
}

// ─── unknown routes & methods ───

func TestRoutes_UnknownRoutesReturn404(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	for _, path := range []string{"/", "/api", "/api/validate/date", "/api/version"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "not found", decodeError(t, resp.Body).Message)
		})
	}
}

func TestRoutes_WrongMethodReturns404(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/validate/finite"},
		{http.MethodPut, "/api/validate/numeric"},
		{http.MethodDelete, "/api/validate"},
		{http.MethodPost, "/api/health"},
		{http.MethodPost, "/api/version/"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, http.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}

// ─── middleware chain ───

func TestRoutes_TraceIDHeader(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(utils.TraceIDHeader))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set(utils.TraceIDHeader, "trace-from-client")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "trace-from-client", resp.Header.Get(utils.TraceIDHeader))
}

func TestRoutes_GzipRoundTrip(t *testing.T) {
	srv := newTestServer(t, config.Server{})

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(finitePayload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/validate/finite", &compressed)
	require.NoError(t, err)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	// a custom transport keeps the response compressed
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	assert.True(t, decodeResult(t, zr).Filled)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, config.Server{CORSAllowedOrigins: []string{"https://console.example.com"}})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/validate/finite", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, resp.StatusCode, 300)
	assert.Equal(t, "https://console.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRoutes_CORSDisallowedOrigin(t *testing.T) {
	srv := newTestServer(t, config.Server{CORSAllowedOrigins: []string{"https://console.example.com"}})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/validate/finite", strings.NewReader(finitePayload))
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRoutes_RequestTimeoutIsApplied(t *testing.T) {
	srv := newTestServer(t, config.Server{RequestTimeout: time.Second})

	resp := post(t, srv, "/api/validate/finite", finitePayload)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
