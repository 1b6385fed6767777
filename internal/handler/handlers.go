package handler

import (
	"github.com/townhall-project/feedback-portal/internal/config"
	"github.com/townhall-project/feedback-portal/internal/handler/http"
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
