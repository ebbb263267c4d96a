package service

import (
	"context"
	"time"

	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/rs/zerolog"
)

// SlotValidationLoggingService logs every validation with its outcome.
// The request-scoped logger from ctx is preferred so entries carry the
// trace id; the fallback logger is used otherwise.
type SlotValidationLoggingService struct {
	inner  SlotValidationService
	logger *logger.Logger
}

func NewSlotValidationLoggingService(logger *logger.Logger) SlotValidationServiceWrapper {
	return &SlotValidationLoggingService{logger: logger}
}

func (l *SlotValidationLoggingService) ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error) {
	start := time.Now()
	res, err := l.inner.ValidateFinite(ctx, req)
	l.log(ctx, models.FiniteValuesEntity, req.Key, len(req.Values), start, res, err)
	return res, err
}

func (l *SlotValidationLoggingService) ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error) {
	start := time.Now()
	res, err := l.inner.ValidateNumeric(ctx, req)
	l.log(ctx, models.NumericValuesEntity, req.Key, len(req.Values), start, res, err)
	return res, err
}

func (l *SlotValidationLoggingService) Wrap(wrapper SlotValidationService) SlotValidationService {
	l.inner = wrapper
	return l
}

func (l *SlotValidationLoggingService) log(ctx context.Context, parser models.ValidationParser, key string, values int, start time.Time, res models.ValidationResult, err error) {
	log := l.contextLogger(ctx)

	var event *zerolog.Event
	switch {
	case err == nil:
		event = log.Debug().
			Bool("filled", res.Filled).
			Bool("partially_filled", res.PartiallyFilled).
			Str("trigger", res.Trigger)
	case isRequestError(err):
		event = log.Warn().Err(err)
	default:
		event = log.Error().Err(err)
	}

	event.
		Str("validation_parser", string(parser)).
		Str("key", key).
		Int("values", values).
		Dur("took", time.Since(start)).
		Msg("slot validation")
}

func (l *SlotValidationLoggingService) contextLogger(ctx context.Context) *logger.Logger {
	if log := logger.FromContext(ctx); log.GetLevel() != zerolog.Disabled {
		return log
	}
	return l.logger
}

// isRequestError reports whether err was caused by the caller's payload.
func isRequestError(err error) bool {
	if slots.IsConfigError(err) {
		return true
	}
	return validators.IsRequestError(err)
}
