package main

import (
	"os"

	"github.com/MKhiriev/slot-validation-service/internal/client"
	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("slot-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(cfg, buildInfo, nil, log)

	// cobra already printed the error
	if err = app.Run(); err != nil {
		os.Exit(1)
	}
}
