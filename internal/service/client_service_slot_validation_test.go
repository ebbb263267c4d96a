package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/slot-validation-service/internal/adapter"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/mock"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/internal/workers"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestClientService(t *testing.T) (ClientSlotValidationService, *mock.MockSlotValidationAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockSlotValidationAdapter(ctrl)
	return NewClientSlotValidationService(serverAdapter, workers.NewPool(2), logger.Nop()), serverAdapter
}

func finitePayload() models.SlotPayload {
	req := educationRequest()
	return models.SlotPayload{Parser: models.FiniteValuesEntity, Finite: &req}
}

func numericPayload(age int64) models.SlotPayload {
	req := ageRequest(age)
	return models.SlotPayload{Parser: models.NumericValuesEntity, Numeric: &req}
}

// ─────────────────────────────────────────────
// Validate
// ─────────────────────────────────────────────

func TestClientValidate_Finite(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)

	serverAdapter.EXPECT().ValidateFinite(gomock.Any(), educationRequest()).
		DoAndReturn(func(ctx context.Context, _ models.FiniteValuesRequest) (models.ValidationResult, error) {
			_, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok, "trace id must be attached")
			return models.ValidationResult{Filled: true}, nil
		})

	res, err := svc.Validate(context.Background(), finitePayload())

	require.NoError(t, err)
	assert.True(t, res.Filled)
}

func TestClientValidate_KeepsCallerTraceID(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)

	serverAdapter.EXPECT().ValidateNumeric(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.NumericValuesRequest) (models.ValidationResult, error) {
			traceID, _ := utils.GetTraceIDFromContext(ctx)
			assert.Equal(t, "caller-trace", traceID)
			return models.ValidationResult{}, nil
		})

	_, err := svc.Validate(utils.WithTraceID(context.Background(), "caller-trace"), numericPayload(20))
	require.NoError(t, err)
}

func TestClientValidate_MapsServerSentinel(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)

	serverAdapter.EXPECT().ValidateNumeric(gomock.Any(), gomock.Any()).
		Return(models.ValidationResult{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, slots.ErrConstraintParse.Error()))

	_, err := svc.Validate(context.Background(), numericPayload(20))

	assert.ErrorIs(t, err, slots.ErrConstraintParse)
}

func TestClientValidate_EmptyPayload(t *testing.T) {
	svc, _ := newTestClientService(t)

	_, err := svc.Validate(context.Background(), models.SlotPayload{})

	assert.ErrorIs(t, err, ErrEmptyPayload)
}

// ─────────────────────────────────────────────
// ValidateBatch
// ─────────────────────────────────────────────

func TestClientValidateBatch_OrderedResults(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)

	serverAdapter.EXPECT().ValidateFinite(gomock.Any(), gomock.Any()).
		Return(models.ValidationResult{Filled: true}, nil)
	serverAdapter.EXPECT().ValidateNumeric(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.NumericValuesRequest) (models.ValidationResult, error) {
			age, _ := req.Values[0].Value.Float()
			if age < 18 {
				return models.ValidationResult{PartiallyFilled: true, Trigger: "invalid_age"}, nil
			}
			return models.ValidationResult{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, slots.ErrMissingKey.Error())
		}).Times(2)

	results, err := svc.ValidateBatch(context.Background(), []models.SlotPayload{
		finitePayload(),
		numericPayload(15),
		numericPayload(40),
	})

	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	require.NotNil(t, results[0].Result)
	assert.True(t, results[0].Result.Filled)

	require.NotNil(t, results[1].Result)
	assert.Equal(t, "invalid_age", results[1].Result.Trigger)

	assert.Nil(t, results[2].Result)
	assert.Equal(t, slots.ErrMissingKey.Error(), results[2].Error)
}

func TestClientValidateBatch_Empty(t *testing.T) {
	svc, _ := newTestClientService(t)

	_, err := svc.ValidateBatch(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoPayloadsProvided)
}

func TestClientValidateBatch_ServerUnavailableAborts(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)

	serverAdapter.EXPECT().ValidateFinite(gomock.Any(), gomock.Any()).
		Return(models.ValidationResult{}, fmt.Errorf("%w: connection refused", adapter.ErrUnavailable)).
		MinTimes(1)

	_, err := svc.ValidateBatch(context.Background(), []models.SlotPayload{finitePayload(), finitePayload(), finitePayload()})

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ─────────────────────────────────────────────
// ServerVersion
// ─────────────────────────────────────────────

func TestClientServerVersion(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)
	serverAdapter.EXPECT().GetServerVersion(gomock.Any()).Return("1.2.3", nil)

	v, err := svc.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestClientServerVersion_InternalError(t *testing.T) {
	svc, serverAdapter := newTestClientService(t)
	serverAdapter.EXPECT().GetServerVersion(gomock.Any()).
		Return("", fmt.Errorf("%w: internal server error", adapter.ErrInternalServerError))

	_, err := svc.ServerVersion(context.Background())

	assert.ErrorIs(t, err, ErrServerFailure)
}

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := NewClientServices(mock.NewMockSlotValidationAdapter(ctrl), 3, logger.Nop())

	require.NotNil(t, services.SlotValidationService)
}
