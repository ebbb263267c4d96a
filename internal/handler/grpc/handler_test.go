package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"

	slotvalidationpb "github.com/MKhiriev/slot-validation-service/api/slotvalidation"
	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/mock"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ─── helpers ───

func newRealServices(t *testing.T) *service.Services {
	t.Helper()
	services, err := service.NewServices(&config.StructuredConfig{App: config.App{Version: "3.1.0"}}, logger.Nop())
	require.NoError(t, err)
	return services
}

// startServer serves h over an in-memory listener and returns a client for it.
func startServer(t *testing.T, h *Handler) slotvalidationpb.SlotValidationClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(h.ServerOptions()...)
	h.Register(s)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return slotvalidationpb.NewSlotValidationClient(conn)
}

func strPtr(v models.SlotValue) *models.SlotValue { return &v }

func educationRequest(value string) *models.FiniteValuesRequest {
	return &models.FiniteValuesRequest{
		SlotInfo:        models.SlotInfo{Name: "education", ValidationParser: models.FiniteValuesEntity},
		Values:          []models.ValueRecord{{EntityType: "education", Value: strPtr(models.StringValue(value))}},
		SupportedValues: []string{"school", "college"},
		InvalidTrigger:  "invalid_education",
		Key:             "education_stated",
		PickFirst:       true,
	}
}

func ageRequest(age int64, constraint string) *models.NumericValuesRequest {
	return &models.NumericValuesRequest{
		SlotInfo:       models.SlotInfo{Name: "age", ValidationParser: models.NumericValuesEntity},
		Values:         []models.ValueRecord{models.NewValueRecord("number", models.IntValue(age))},
		InvalidTrigger: "invalid_age",
		Key:            "age_stated",
		PickFirst:      true,
		Constraint:     constraint,
		VarName:        "x",
	}
}

// ─── ValidateFinite / ValidateNumeric ───

func TestValidateFinite_Filled(t *testing.T) {
	client := startServer(t, NewHandler(newRealServices(t), logger.Nop()))

	res, err := client.ValidateFinite(context.Background(), educationRequest("college"))

	require.NoError(t, err)
	assert.True(t, res.Filled)
	assert.False(t, res.PartiallyFilled)
	assert.Equal(t, map[string]any{"education_stated": "COLLEGE"}, res.Parameters)
}

func TestValidateFinite_PartiallyFilled(t *testing.T) {
	client := startServer(t, NewHandler(newRealServices(t), logger.Nop()))

	res, err := client.ValidateFinite(context.Background(), educationRequest("university"))

	require.NoError(t, err)
	assert.True(t, res.PartiallyFilled)
	assert.Equal(t, "invalid_education", res.Trigger)
	assert.Empty(t, res.Parameters)
}

func TestValidateNumeric(t *testing.T) {
	client := startServer(t, NewHandler(newRealServices(t), logger.Nop()))

	res, err := client.ValidateNumeric(context.Background(), ageRequest(23, "x>=18 and x<=30"))
	require.NoError(t, err)
	assert.True(t, res.Filled)
	assert.EqualValues(t, 23, res.Parameters["age_stated"])

	res, err = client.ValidateNumeric(context.Background(), ageRequest(15, "x>=18 and x<=30"))
	require.NoError(t, err)
	assert.Equal(t, "invalid_age", res.Trigger)
}

func TestValidate_ErrorCodes(t *testing.T) {
	client := startServer(t, NewHandler(newRealServices(t), logger.Nop()))
	ctx := context.Background()

	missingKey := educationRequest("college")
	missingKey.Key = ""

	wrongParser := educationRequest("college")
	wrongParser.ValidationParser = models.NumericValuesEntity

	tests := []struct {
		name        string
		call        func() error
		wantCode    codes.Code
		wantMessage string
	}{
		{
			name:        "missing key",
			call:        func() error { _, err := client.ValidateFinite(ctx, missingKey); return err },
			wantCode:    codes.InvalidArgument,
			wantMessage: "key is required",
		},
		{
			name:        "parser mismatch",
			call:        func() error { _, err := client.ValidateFinite(ctx, wrongParser); return err },
			wantCode:    codes.InvalidArgument,
			wantMessage: "validation_parser does not match the endpoint",
		},
		{
			name:        "constraint parse failure",
			call:        func() error { _, err := client.ValidateNumeric(ctx, ageRequest(20, "x>")); return err },
			wantCode:    codes.InvalidArgument,
			wantMessage: "constraint is not a valid expression",
		},
		{
			name:        "forbidden constraint",
			call:        func() error { _, err := client.ValidateNumeric(ctx, ageRequest(20, "__import__('os')")); return err },
			wantCode:    codes.InvalidArgument,
			wantMessage: "constraint is not a valid expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMessage, st.Message())
		})
	}
}

func TestValidate_UnexpectedErrorIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSlotValidationService(ctrl)
	svc.EXPECT().ValidateNumeric(gomock.Any(), gomock.Any()).Return(models.ValidationResult{}, assert.AnError)

	client := startServer(t, NewHandler(&service.Services{SlotValidationService: svc}, logger.Nop()))

	_, err := client.ValidateNumeric(context.Background(), ageRequest(20, ""))

	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal server error", st.Message())
}

func TestGetVersion(t *testing.T) {
	client := startServer(t, NewHandler(newRealServices(t), logger.Nop()))

	res, err := client.GetVersion(context.Background(), &models.VersionRequest{})

	require.NoError(t, err)
	assert.Equal(t, "3.1.0", res.Version)
}

// ─── interceptors ───

func TestTraceIDInterceptor(t *testing.T) {
	client := startServer(t, NewHandler(newRealServices(t), logger.Nop()))

	t.Run("echoes incoming id", func(t *testing.T) {
		var header metadata.MD
		ctx := metadata.AppendToOutgoingContext(context.Background(), "x-trace-id", "trace-42")

		_, err := client.GetVersion(ctx, &models.VersionRequest{}, grpc.Header(&header))

		require.NoError(t, err)
		assert.Equal(t, []string{"trace-42"}, header.Get("x-trace-id"))
	})

	t.Run("generates id", func(t *testing.T) {
		var header metadata.MD

		_, err := client.GetVersion(context.Background(), &models.VersionRequest{}, grpc.Header(&header))

		require.NoError(t, err)
		require.Len(t, header.Get("x-trace-id"), 1)
		assert.NotEmpty(t, header.Get("x-trace-id")[0])
	})
}

func TestLoggingInterceptor_LogsCallWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	client := startServer(t, NewHandler(newRealServices(t), log))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-trace-id", "trace-7")
	_, err := client.ValidateNumeric(ctx, ageRequest(20, "x>"))
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"method":"/slotvalidation.v1.SlotValidation/ValidateNumeric"`)
	assert.Contains(t, buf.String(), `"code":"InvalidArgument"`)
	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)
}

func TestRecoveryInterceptor(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	info := &grpc.UnaryServerInfo{FullMethod: "/slotvalidation.v1.SlotValidation/ValidateFinite"}

	resp, err := h.recoveryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}
