package main

import (
	"fmt"

	"dogfetch/internal/adapter"
	"dogfetch/internal/client"
	"dogfetch/internal/config"
	"dogfetch/internal/logger"
	"dogfetch/internal/service"
	"dogfetch/internal/store"
	"dogfetch/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("dogfetch")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	localStorage, err := store.NewLocalStorage(cfg.Storage.FilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(localStorage, catalog, cfg.Storage.DefaultTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, cfg.UI.PageSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
