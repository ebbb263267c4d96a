package http

import (
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/rs/cors"
)

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{utils.TraceIDHeader},
	}).Handler
}
