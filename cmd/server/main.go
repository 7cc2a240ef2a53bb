package main

import (
	"fmt"

	"github.com/grustnolabs/go-grustnogram/grustnotest"
	"github.com/grustnolabs/go-grustnogram/internal/config"
	"github.com/grustnolabs/go-grustnogram/internal/logger"
	"github.com/grustnolabs/go-grustnogram/internal/server"
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

	log := logger.NewLogger("grustnogram-dev-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handler := grustnotest.NewHandler(log)
	srv, err := server.NewServer(handler.Routes(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("address", cfg.Address).
		Str("version", cfg.Version).
		Msg("development server is ready")

	srv.RunServer()
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
