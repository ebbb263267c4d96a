package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSONResponses(t *testing.T) {
	var accept string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/validate", nil)
	req.Header.Set("Accept", "application/xml")

	rr := httptest.NewRecorder()
	withJSONResponses(next).ServeHTTP(rr, req)

	assert.Empty(t, accept)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
