package main

import (
	"context"
	"fmt"

	"github.com/amnayelamri/ResinByDounia/internal/config"
	"github.com/amnayelamri/ResinByDounia/internal/handler"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/server"
	"github.com/amnayelamri/ResinByDounia/internal/service"
	"github.com/amnayelamri/ResinByDounia/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("resin-by-dounia-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	// Bootstrap the default admin account. A failure here must not take the
	// public catalog down, so the error is logged and startup continues.
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err = services.AuthService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Err(err).Msg("error creating default admin account")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
