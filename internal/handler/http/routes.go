package http

import (
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if len(h.cfg.CORSAllowedOrigins) > 0 {
		router.Use(h.withCORS())
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/health", h.health)
	router.Get("/api/version/", h.getServerVersion)

	// validation endpoints always answer with JSON
	router.With(withJSONResponses).Post("/api/validate", h.validate)
	router.With(withJSONResponses, h.withSchema(models.FiniteValuesEntity)).Post("/api/validate/finite", h.validateFinite)
	router.With(withJSONResponses, h.withSchema(models.NumericValuesEntity)).Post("/api/validate/numeric", h.validateNumeric)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
