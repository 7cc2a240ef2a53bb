package main

import (
	"context"
	"fmt"

	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/internal/client"
	"github.com/grustnolabs/go-grustnogram/internal/config"
	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/session"
	"github.com/grustnolabs/go-grustnogram/internal/tui"
	"github.com/grustnolabs/go-grustnogram/internal/validators"
	"github.com/grustnolabs/go-grustnogram/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env необязателен
	_ = godotenv.Load()

	log := logger.NewClientLogger("grustnogram-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := grustnogram.NewClient(grustnogram.Config{
		BaseURL:        cfg.API.BaseURL,
		UserAgent:      cfg.API.UserAgent,
		RequestTimeout: cfg.API.RequestTimeout,
		Logger:         &log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	store, err := session.NewStore(context.Background(), cfg.Storage.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close session store")
		}
	}()

	// версия из ldflags в приоритете
	version := buildVersion
	if version == "N/A" && cfg.App.Version != "" {
		version = cfg.App.Version
	}

	ui, err := tui.New(api, validators.New(), models.NewAppBuildInfo(version, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(api, store, ui, log)
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
