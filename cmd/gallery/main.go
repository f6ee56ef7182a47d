package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/shpixel/gallery/internal/adapter"
	"github.com/shpixel/gallery/internal/client"
	"github.com/shpixel/gallery/internal/config"
	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/internal/service"
	"github.com/shpixel/gallery/internal/session"
	"github.com/shpixel/gallery/internal/store"
	"github.com/shpixel/gallery/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewClientLogger("gallery-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	storages, err := store.NewStorages(cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Local.Close()

	sess := session.New()
	services := service.NewServices(storages, serverAdapter, sess, cfg.App.ThumbDir, log)

	ui := tui.New(services, storages, sess)

	app, err := client.NewApp(services, storages, ui, log)
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
