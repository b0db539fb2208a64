// Package roadmap module wiring: encapsulates pipeline setup and route
// registration for the webhook bounded context.
package roadmap

import (
	apphttp "roadmap_backend/internal/http"

	"roadmap_backend/internal/events"
	"roadmap_backend/internal/generation"
	"roadmap_backend/platform/logger"
)

// Module is the roadmap bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates and initializes the roadmap module with all its dependencies.
func NewModule(selector *ModelSelector, invoker *generation.Invoker, bus events.Bus, log *logger.Logger) *Module {
	service := NewService(selector, invoker, bus, log)
	handler := NewHandler(service, log)

	return &Module{
		handler: handler,
		service: service,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "roadmap"
}

// Service exposes the pipeline service for composition-root wiring.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts roadmap routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public webhook endpoint; the caller is trusted by contract.
	ctx.API.POST("/roadmap", m.handler.HandleRoadmap)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
