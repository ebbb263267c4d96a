package http

import (
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: app.MsgServiceHealthy}, http.StatusOK)
}
