package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/slot-validation-service/models"
)

// withSchema rejects bodies that do not match the JSON Schema of parser.
// The body is buffered and handed on unchanged.
func (h *Handler) withSchema(parser models.ValidationParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := readBody(r)
			if err != nil {
				h.writeServiceError(w, r, err, "*Handler.withSchema")
				return
			}

			if err = h.schemaValidator.ValidateSchema(r.Context(), parser, body); err != nil {
				h.writeServiceError(w, r, err, "*Handler.withSchema")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
