package service

import (
	"github.com/MKhiriev/slot-validation-service/internal/adapter"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/workers"
)

type ClientServices struct {
	SlotValidationService ClientSlotValidationService
}

func NewClientServices(serverAdapter adapter.SlotValidationAdapter, workerCount int, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SlotValidationService: NewClientSlotValidationService(serverAdapter, workers.NewPool(workerCount), logger),
	}
}
