package handlers

import (
	"github.com/gridlens/gridlens/internal/logging"
	"github.com/gridlens/gridlens/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger  *logging.Logger
	service *services.AnalysisService
}

// New creates a new handler instance
func New(logger *logging.Logger, service *services.AnalysisService) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}
