// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mergington/activities/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListActivities returns every activity record.
	ListActivities(ctx context.Context) ([]model.Activity, error)

	// Signup registers email for the named activity.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity.
	Unregister(ctx context.Context, name, email string) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	activitiesHandler *ActivitiesHandler
	rosterHandler     *RosterHandler
	statsHandler      *StatsHandler
	healthHandler     *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		activitiesHandler: NewActivitiesHandler(deps),
		rosterHandler:     NewRosterHandler(deps),
		statsHandler:      NewStatsHandler(statsProvider),
		healthHandler:     NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(RequestIDMiddleware(s.statsHandler.HandleStats), "stats"))
	mux.HandleFunc("/activities", MetricsMiddleware(RequestIDMiddleware(s.activitiesHandler.HandleListActivities), "activities"))
	mux.HandleFunc("/activities/", MetricsMiddleware(RequestIDMiddleware(s.rosterHandler.HandleRoster), "roster"))
}

// activityDetail mirrors the JSON shape of one activity in GET /activities.
type activityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// messageResponse is the success body of signup and unregister.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse carries a human-readable detail string, the error shape
// clients of the original API expect.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}
