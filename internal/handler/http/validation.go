package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
)

func (h *Handler) validateFinite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FiniteValuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateFinite").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.SlotValidationService.ValidateFinite(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.validateFinite")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) validateNumeric(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NumericValuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateNumeric").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.SlotValidationService.ValidateNumeric(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.validateNumeric")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// validate picks the validator from the payload's validation_parser.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.validate")
		return
	}

	parser, err := models.PeekValidationParser(body)
	if err != nil {
		h.writeDecodeError(w, r, err, "*Handler.validate")
		return
	}

	// schema first so that wrong-typed fields are reported as schema violations
	if err = h.schemaValidator.ValidateSchema(r.Context(), parser, body); err != nil {
		h.writeServiceError(w, r, err, "*Handler.validate")
		return
	}

	payload, err := models.DecodeSlotPayloadAs(parser, body)
	if err != nil {
		h.writeDecodeError(w, r, err, "*Handler.validate")
		return
	}

	result, err := service.ValidatePayload(r.Context(), h.services.SlotValidationService, payload)
	if err != nil {
		h.writeServiceError(w, r, err, "*Handler.validate")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	if errors.Is(err, models.ErrUnknownValidationParser) {
		h.writeServiceError(w, r, err, fn)
		return
	}
	logger.FromRequest(r).Err(err).Str("func", fn).Msg("invalid JSON was passed")
	utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, message, status)
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: error reading request body: %v", service.ErrInvalidDataProvided, err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
