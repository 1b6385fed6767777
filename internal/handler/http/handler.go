package http

import (
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
