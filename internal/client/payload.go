package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/slot-validation-service/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyPayloadFile = errors.New("payload file is empty")
	ErrNotABatch        = errors.New("batch file must hold a list of payloads")
)

// readPayloadFile returns the JSON form of the file at path. YAML files are
// converted; "-" reads stdin as JSON.
func readPayloadFile(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyPayloadFile
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlToJSON(data)
	default:
		return data, nil
	}
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode YAML payload: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML payload: %w", err)
	}
	return out, nil
}

// finitePayload decodes a finite request. A missing validation_parser is
// filled in; a different one is left for the server to reject.
func finitePayload(data []byte) (models.SlotPayload, error) {
	var req models.FiniteValuesRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return models.SlotPayload{}, fmt.Errorf("decode finite payload: %w", err)
	}
	if req.ValidationParser == "" {
		req.ValidationParser = models.FiniteValuesEntity
	}
	return models.SlotPayload{Parser: models.FiniteValuesEntity, Finite: &req}, nil
}

func numericPayload(data []byte) (models.SlotPayload, error) {
	var req models.NumericValuesRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return models.SlotPayload{}, fmt.Errorf("decode numeric payload: %w", err)
	}
	if req.ValidationParser == "" {
		req.ValidationParser = models.NumericValuesEntity
	}
	return models.SlotPayload{Parser: models.NumericValuesEntity, Numeric: &req}, nil
}

func batchPayloads(data []byte) ([]models.SlotPayload, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotABatch, err)
	}

	payloads := make([]models.SlotPayload, 0, len(raw))
	for i, item := range raw {
		p, err := models.DecodeSlotPayload(item)
		if err != nil {
			return nil, fmt.Errorf("payload %d: %w", i, err)
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}
