package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-docs-sync/internal/adapter"
	"github.com/MKhiriev/go-docs-sync/internal/client"
	"github.com/MKhiriev/go-docs-sync/internal/config"
	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/MKhiriev/go-docs-sync/internal/service"
	"github.com/MKhiriev/go-docs-sync/internal/tui"
	"github.com/MKhiriev/go-docs-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-docs-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// stdout carries the view JSON in one-shot mode
	if !cfg.Once {
		printBuildInfo()
	}

	dialer, err := adapter.NewWSDialer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create websocket dialer")
	}

	services, err := service.NewClientServices(dialer, cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	var ui client.UI
	if !cfg.Once {
		ui, err = tui.New(services, cfg.Sync, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(cfg, services, ui, tui.ErrUserQuit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		if cfg.Once {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
