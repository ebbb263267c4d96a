package utils

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// JSONCodecName is the gRPC content-subtype of the JSON codec.
// Requests sent with grpc.CallContentSubtype(JSONCodecName) are encoded as
// "application/grpc+json".
const JSONCodecName = "json"

// JSONCodec encodes gRPC messages with encoding/json so that plain Go
// structs with json tags can travel over gRPC without generated code.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}
	return nil
}

func (JSONCodec) Name() string {
	return JSONCodecName
}

func init() {
	encoding.RegisterCodec(JSONCodec{})
}
