package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/adapter"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/internal/workers"
	"github.com/MKhiriev/slot-validation-service/models"
)

type clientSlotValidationService struct {
	serverAdapter adapter.SlotValidationAdapter
	runner        workers.Runner
	traceIDs      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientSlotValidationService returns a ClientSlotValidationService that
// talks to the server through serverAdapter and runs batches on runner.
func NewClientSlotValidationService(serverAdapter adapter.SlotValidationAdapter, runner workers.Runner, logger *logger.Logger) ClientSlotValidationService {
	return &clientSlotValidationService{
		serverAdapter: serverAdapter,
		runner:        runner,
		traceIDs:      utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

func (s *clientSlotValidationService) Validate(ctx context.Context, payload models.SlotPayload) (models.ValidationResult, error) {
	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, s.traceIDs.Generate())
	}

	var (
		res models.ValidationResult
		err error
	)
	switch {
	case payload.Finite != nil:
		res, err = s.serverAdapter.ValidateFinite(ctx, *payload.Finite)
	case payload.Numeric != nil:
		res, err = s.serverAdapter.ValidateNumeric(ctx, *payload.Numeric)
	default:
		return models.ValidationResult{}, ErrEmptyPayload
	}
	if err != nil {
		traceID, _ := utils.GetTraceIDFromContext(ctx)
		s.logger.Debug().Err(err).Str("trace_id", traceID).Msg("server rejected payload")
		return models.ValidationResult{}, mapAdapterError(err)
	}

	return res, nil
}

func (s *clientSlotValidationService) ValidateBatch(ctx context.Context, payloads []models.SlotPayload) ([]models.BatchItemResult, error) {
	if len(payloads) == 0 {
		return nil, ErrNoPayloadsProvided
	}

	results := make([]models.BatchItemResult, len(payloads))
	err := s.runner.Run(ctx, len(payloads), func(ctx context.Context, i int) error {
		results[i].Index = i

		res, err := s.Validate(ctx, payloads[i])
		if err != nil {
			if errors.Is(err, ErrServerUnavailable) || ctx.Err() != nil {
				return fmt.Errorf("payload %d: %w", i, err)
			}
			results[i].Error = err.Error()
			return nil
		}

		results[i].Result = &res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (s *clientSlotValidationService) ServerVersion(ctx context.Context) (string, error) {
	v, err := s.serverAdapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return v, nil
}
