package handler

import (
	"github.com/amnayelamri/ResinByDounia/internal/config"
	"github.com/amnayelamri/ResinByDounia/internal/handler/http"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Files.MediaDir, logger),
	}, nil
}
