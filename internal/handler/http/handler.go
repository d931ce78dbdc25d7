package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

type Handler struct {
	services *service.Services
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. gatherer backs GET /metrics; a nil
// gatherer serves the default prometheus registry.
func NewHandler(services *service.Services, gatherer prometheus.Gatherer, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Handler{
		services:       services,
		gatherer:       gatherer,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
