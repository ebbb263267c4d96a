package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request whose context carries a logger writing to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		response     string
		wantContains []string
	}{
		{
			name:     "successful validation",
			method:   http.MethodPost,
			path:     "/api/validate/finite",
			status:   http.StatusOK,
			response: `{"filled":true}`,
			wantContains: []string{
				`"method":"POST"`,
				`"uri":"/api/validate/finite"`,
				`"status":200`,
				`"duration":`,
				`"size":15`,
			},
		},
		{
			name:     "bad request",
			method:   http.MethodPost,
			path:     "/api/validate/numeric",
			status:   http.StatusBadRequest,
			response: `{"status":"error"}`,
			wantContains: []string{
				`"status":400`,
				`"size":18`,
			},
		},
		{
			name:         "version",
			method:       http.MethodGet,
			path:         "/api/version/?verbose=1",
			status:       http.StatusOK,
			response:     "1.0.0",
			wantContains: []string{`"uri":"/api/version/?verbose=1"`, `"size":5`},
		},
	}

	h := newTestHandler(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.response, rr.Body.String())
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	newTestHandler(t, nil).withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/health", &buf))

	assert.Contains(t, buf.String(), `"status":0`)
	assert.Contains(t, buf.String(), `"size":0`)
}

func TestWithLogging_Duration(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	newTestHandler(t, nil).withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/health", &buf))

	assert.Regexp(t, `"duration":(2\d|[3-9]\d|\d{3,})`, buf.String())
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		newTestHandler(t, nil).withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
