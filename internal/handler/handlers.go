package handler

import (
	"github.com/paveldk/go-blog-api/internal/config"
	"github.com/paveldk/go-blog-api/internal/handler/http"
	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/service"
)

// Handlers aggregates the transport-level handlers of the application.
// The blog exposes a single REST surface, so only HTTP is populated.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the transport handlers configured in cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
