package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/mock"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─── helpers ───

type closerSpy struct{ closed int }

func (c *closerSpy) Close() error {
	c.closed++
	return nil
}

type testApp struct {
	app     *App
	svc     *mock.MockClientSlotValidationService
	closer  *closerSpy
	adapter *config.Adapter
	out     *bytes.Buffer
}

func newTestConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App: config.App{Version: "1.0.0", LogLevel: "info"},
		Adapter: config.Adapter{
			Transport:      config.TransportHTTP,
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: time.Second,
			Workers:        2,
		},
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		svc:    mock.NewMockClientSlotValidationService(ctrl),
		closer: &closerSpy{},
		out:    &bytes.Buffer{},
	}
	factory := func(cfg config.Adapter, _ *logger.Logger) (*service.ClientServices, io.Closer, error) {
		ta.adapter = &cfg
		return &service.ClientServices{SlotValidationService: ta.svc}, ta.closer, nil
	}

	ta.app = NewApp(newTestConfig(), models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), factory, logger.Nop())
	ta.app.SetOutput(ta.out, io.Discard)
	return ta
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const finiteJSON = `{
  "invalid_trigger": "invalid_ids_stated",
  "key": "ids_stated",
  "name": "govt_id",
  "reuse": true,
  "support_multiple": true,
  "pick_first": false,
  "supported_values": ["pan", "aadhaar"],
  "type": ["id"],
  "validation_parser": "finite_values_entity",
  "values": [{"entity_type": "id", "value": "pan"}]
}`

const numericYAML = `
invalid_trigger: invalid_age
key: age_stated
name: age
reuse: true
pick_first: true
type: [number]
constraint: "x>=18 and x<=30"
var_name: x
values:
  - entity_type: number
    value: 23
`

// ─── commands ───

func TestFiniteCommand(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "finite.json", finiteJSON)

	ta.svc.EXPECT().
		Validate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.SlotPayload) (models.ValidationResult, error) {
			require.NotNil(t, p.Finite)
			assert.Equal(t, models.FiniteValuesEntity, p.Parser)
			assert.Equal(t, "ids_stated", p.Finite.Key)
			return models.ValidationResult{Filled: true, Parameters: map[string]any{"ids_stated": []string{"PAN"}}}, nil
		})

	require.NoError(t, ta.app.Execute(context.Background(), []string{"finite", path}))

	assert.JSONEq(t, `{"filled":true,"partially_filled":false,"trigger":"","parameters":{"ids_stated":["PAN"]}}`, ta.out.String())
	assert.Equal(t, 1, ta.closer.closed)
}

func TestNumericCommand_YAMLPayload(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "age.yaml", numericYAML)

	ta.svc.EXPECT().
		Validate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.SlotPayload) (models.ValidationResult, error) {
			require.NotNil(t, p.Numeric)
			assert.Equal(t, models.NumericValuesEntity, p.Numeric.ValidationParser, "missing parser is filled in")
			assert.Equal(t, "x>=18 and x<=30", p.Numeric.Constraint)
			require.Len(t, p.Numeric.Values, 1)
			require.True(t, p.Numeric.Values[0].HasValue())
			n, err := p.Numeric.Values[0].Value.Float()
			require.NoError(t, err)
			assert.Equal(t, float64(23), n)
			return models.ValidationResult{Filled: true}, nil
		})

	require.NoError(t, ta.app.Execute(context.Background(), []string{"numeric", path}))
}

func TestValidateCommand_Stdin(t *testing.T) {
	ta := newTestApp(t)
	ta.app.root.SetIn(strings.NewReader(finiteJSON))

	ta.svc.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(models.ValidationResult{Filled: true}, nil)

	require.NoError(t, ta.app.Execute(context.Background(), []string{"validate", "-"}))
	assert.Contains(t, ta.out.String(), `"filled": true`)
}

func TestValidateCommand_UnknownParser(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "date.json", `{"validation_parser": "date_entity"}`)

	err := ta.app.Execute(context.Background(), []string{"validate", path})

	assert.ErrorIs(t, err, models.ErrUnknownValidationParser)
}

func TestValidateCommand_ServerError(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "finite.json", finiteJSON)

	ta.svc.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(models.ValidationResult{}, service.ErrServerUnavailable)

	err := ta.app.Execute(context.Background(), []string{"validate", path})

	assert.ErrorIs(t, err, service.ErrServerUnavailable)
	assert.Equal(t, 1, ta.closer.closed, "connection is closed on failure too")
}

func TestBatchCommand(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "batch.json", "["+finiteJSON+","+finiteJSON+"]")

	ta.svc.EXPECT().
		ValidateBatch(gomock.Any(), gomock.Len(2)).
		Return([]models.BatchItemResult{
			{Index: 0, Result: &models.ValidationResult{Filled: true}},
			{Index: 1, Result: &models.ValidationResult{Filled: true}},
		}, nil)

	require.NoError(t, ta.app.Execute(context.Background(), []string{"batch", path}))
	assert.Contains(t, ta.out.String(), `"index": 1`)
}

func TestBatchCommand_ItemFailures(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "batch.json", "["+finiteJSON+","+finiteJSON+"]")

	ta.svc.EXPECT().
		ValidateBatch(gomock.Any(), gomock.Any()).
		Return([]models.BatchItemResult{
			{Index: 0, Result: &models.ValidationResult{Filled: true}},
			{Index: 1, Error: "key is required"},
		}, nil)

	err := ta.app.Execute(context.Background(), []string{"batch", path})

	require.Error(t, err)
	assert.Equal(t, "1 of 2 payloads failed", err.Error())
	assert.Contains(t, ta.out.String(), `"error": "key is required"`)
}

func TestBatchCommand_NotAList(t *testing.T) {
	ta := newTestApp(t)
	path := writeFile(t, "batch.json", finiteJSON)

	err := ta.app.Execute(context.Background(), []string{"batch", path})

	assert.ErrorIs(t, err, ErrNotABatch)
}

func TestVersionCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.svc.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)

	require.NoError(t, ta.app.Execute(context.Background(), []string{"version"}))

	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-01\nBuild commit: abc123\nServer version: 2.0.0\n", ta.out.String())
}

// ─── flags & setup ───

func TestFlagsOverrideConfig(t *testing.T) {
	ta := newTestApp(t)
	ta.svc.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)

	err := ta.app.Execute(context.Background(), []string{
		"version",
		"--transport", "grpc",
		"--grpc-address", "validator:9999",
		"--timeout", "3s",
		"-w", "8",
	})
	require.NoError(t, err)

	require.NotNil(t, ta.adapter)
	assert.Equal(t, config.TransportGRPC, ta.adapter.Transport)
	assert.Equal(t, "validator:9999", ta.adapter.GRPCAddress)
	assert.Equal(t, "localhost:8080", ta.adapter.HTTPAddress, "untouched flag keeps config value")
	assert.Equal(t, 3*time.Second, ta.adapter.RequestTimeout)
	assert.Equal(t, 8, ta.adapter.Workers)
}

func TestInvalidFlagsFailBeforeConnecting(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown transport", []string{"version", "--transport", "smtp"}},
		{"zero workers", []string{"version", "--workers", "0"}},
		{"bad log level", []string{"version", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)

			err := ta.app.Execute(context.Background(), tt.args)

			require.Error(t, err)
			assert.Nil(t, ta.adapter, "services must not be created")
		})
	}
}

func TestFactoryError(t *testing.T) {
	factoryErr := errors.New("dial failed")
	app := NewApp(newTestConfig(), models.NewAppBuildInfo("", "", ""), func(config.Adapter, *logger.Logger) (*service.ClientServices, io.Closer, error) {
		return nil, nil, factoryErr
	}, logger.Nop())
	app.SetOutput(io.Discard, io.Discard)

	err := app.Execute(context.Background(), []string{"version"})

	assert.ErrorIs(t, err, factoryErr)
}

func TestHelpDoesNotConnect(t *testing.T) {
	ta := newTestApp(t)

	require.NoError(t, ta.app.Execute(context.Background(), []string{"help"}))

	assert.Nil(t, ta.adapter)
	assert.Contains(t, ta.out.String(), "batch")
}

func TestNewServices_UnsupportedTransport(t *testing.T) {
	_, _, err := NewServices(config.Adapter{Transport: "smtp"}, logger.Nop())

	assert.Error(t, err)
}
