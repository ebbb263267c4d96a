package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
)

const (
	finitePath  = "/api/validate/finite"
	numericPath = "/api/validate/numeric"
	versionPath = "/api/version/"
)

type httpSlotValidationAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSlotValidationAdapter constructs an HTTP/REST implementation of
// [SlotValidationAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSlotValidationAdapter(cfg config.Adapter, logger *logger.Logger) (SlotValidationAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpSlotValidationAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ValidateFinite implements [SlotValidationAdapter]. It POSTs req to
// POST /api/validate/finite.
func (h *httpSlotValidationAdapter) ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error) {
	return h.validate(ctx, finitePath, req)
}

// ValidateNumeric implements [SlotValidationAdapter]. It POSTs req to
// POST /api/validate/numeric.
func (h *httpSlotValidationAdapter) ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error) {
	return h.validate(ctx, numericPath, req)
}

func (h *httpSlotValidationAdapter) validate(ctx context.Context, path string, body any) (models.ValidationResult, error) {
	var result models.ValidationResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.ValidationResult{}, fmt.Errorf("validate request %s: %w", path, transportError(ctx, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationResult{}, err
	}

	h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("validation response received")
	return result, nil
}

// GetServerVersion implements [SlotValidationAdapter]. It calls
// GET /api/version/ and returns the plain-text body.
func (h *httpSlotValidationAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", transportError(ctx, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Close implements [SlotValidationAdapter]. Idle connections of the
// underlying transport are released.
func (h *httpSlotValidationAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

// transportError classifies a failure that produced no HTTP response.
func transportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	if ctx.Err() != nil {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
