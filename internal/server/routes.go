package server

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	r := s.router

	// Mode registry
	r.Route("/mode", func(r chi.Router) {
		r.Get("/", s.listModes)
		r.Get("/{slug}", s.getMode)
	})

	// Capability vocabulary
	r.Get("/capability", s.listCapabilities)

	// Definitions refused at load time
	r.Get("/issue", s.listIssues)

	// Effective tool configuration
	r.Get("/config", s.getConfig)

	// Event streaming (SSE)
	r.Get("/event", s.events)

	// Health
	r.Get("/health", s.health)
}
