package http

import (
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/rs/zerolog"
)

// withTraceID reuses the caller's X-Trace-ID or generates one, stores it in
// the request context and attaches a child logger that carries it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
