// Package server exposes the workout engine over HTTP for the UI shell.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/ironlog/internal/session"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	mgr    *session.Manager
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(mgr *session.Manager, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		mgr:    mgr,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Exercise catalogue
		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/groups", s.handleExercisesByGroup)
		r.Post("/exercises", s.handleAddExercise)
		r.Patch("/exercises/{id}", s.handleUpdateExercise)
		r.Get("/exercises/{id}/one-rep-max", s.handleCurrentOneRepMax)
		r.Get("/exercises/{id}/one-rep-max/history", s.handleOneRepMaxHistory)
		r.Get("/exercises/{id}/one-rep-max/best", s.handlePersonalBest)

		// Active session lifecycle
		r.Post("/session", s.handleStartSession)
		r.Post("/session/continue", s.handleContinueSession)
		r.Get("/session", s.handleCurrentSession)
		r.Post("/session/sets", s.handleAddSet)
		r.Post("/session/finish", s.handleFinishSession)
		r.Delete("/session", s.handleAbandonSession)

		// History and aggregates
		r.Get("/sessions", s.handleListSessions)
		r.Delete("/sessions/{id}", s.handleDeleteSession)
		r.Get("/stats/today", s.handleTodayStats)

		// Settings
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings/body-weight", s.handleUpdateBodyWeight)

		// Destructive reset (API key required)
		r.With(APIKeyAuth(s.apiKey)).Post("/reset", s.handleReset)
	})
}

// SetMCP mounts the MCP transport handler.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
