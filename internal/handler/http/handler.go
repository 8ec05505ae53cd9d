package http

import (
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/service"
)

type Handler struct {
	services *service.Services

	// mediaDir is the filesystem root the /uploads/* routes serve from.
	mediaDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, mediaDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		mediaDir: mediaDir,
		logger:   logger,
	}
}
