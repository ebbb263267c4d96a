package adapter

import (
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
)

// NewSlotValidationAdapter returns the adapter for cfg.Transport.
func NewSlotValidationAdapter(cfg config.Adapter, logger *logger.Logger) (SlotValidationAdapter, error) {
	switch cfg.Transport {
	case config.TransportHTTP, "":
		return NewHTTPSlotValidationAdapter(cfg, logger)
	case config.TransportGRPC:
		return NewGRPCSlotValidationAdapter(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTransport, cfg.Transport)
	}
}
