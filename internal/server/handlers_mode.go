package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modekit/modekit/internal/mode"
)

// listModes returns all modes in authoring order.
func (s *Server) listModes(w http.ResponseWriter, r *http.Request) {
	modes := s.registry.List()

	if src := r.URL.Query().Get("source"); src != "" {
		modes = s.registry.ListBySource(mode.Source(src))
	}
	if capability := r.URL.Query().Get("capability"); capability != "" {
		c := mode.Capability(capability)
		if !c.Known() {
			writeError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "unknown capability: "+capability)
			return
		}
		modes = s.registry.ListWithCapability(c)
	}

	writeJSON(w, http.StatusOK, modes)
}

// getMode returns a single mode by exact slug match.
func (s *Server) getMode(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	m, err := s.registry.Get(slug)
	if err != nil {
		if mode.IsNotFound(err) {
			writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// listCapabilities returns the fixed capability vocabulary.
func (s *Server) listCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, mode.KnownCapabilities())
}

// issueView is the wire form of a load issue.
type issueView struct {
	Path   string `json:"path,omitempty"`
	Slug   string `json:"slug,omitempty"`
	Reason string `json:"reason"`
}

// listIssues returns the definitions refused during the last load.
func (s *Server) listIssues(w http.ResponseWriter, r *http.Request) {
	views := make([]issueView, 0, len(s.issues))
	for _, issue := range s.issues {
		views = append(views, issueView{Path: issue.Path, Slug: issue.Slug, Reason: issue.Err.Error()})
	}
	writeJSON(w, http.StatusOK, views)
}

// getConfig returns the effective tool configuration.
func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.appConfig)
}

// health reports server liveness and registry size.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"modes":  s.registry.Count(),
	})
}
