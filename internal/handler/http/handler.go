package http

import (
	"time"

	"github.com/chatnest/api/internal/config"
	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenDuration controls the session cookie lifetime; it matches the
	// expiry of the tokens the cookie carries.
	tokenDuration time.Duration

	// corsAllowedOrigin is served in Access-Control-Allow-Origin.
	corsAllowedOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		tokenDuration:     cfg.Auth.TokenDuration,
		corsAllowedOrigin: cfg.Server.CORSAllowedOrigin,
		logger:            logger,
	}
}
