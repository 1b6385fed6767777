package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/townhall-project/feedback-portal/internal/config"
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/service"
)

func TestNewHandlers_CreatesHTTPHandler(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoHandlersAreCreated)
}
