// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"io"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command given on the command line and returns
	// when it is done.
	Run() error
}

// ServicesFactory builds the client services for the final adapter config.
// The returned closer releases the connection to the server.
type ServicesFactory func(cfg config.Adapter, logger *logger.Logger) (*service.ClientServices, io.Closer, error)
