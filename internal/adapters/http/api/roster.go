// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/pkg/logger"
)

// Detail strings surfaced to clients. The texts are part of the API
// contract; tests and the web UI match on them.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student already signed up for this activity"
	detailNotSignedUp      = "Student is not signed up for this activity"
	detailMissingEmail     = "Missing email parameter"
)

// RosterHandler handles signup and unregister requests under /activities/.
type RosterHandler struct {
	deps Dependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps Dependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleRoster dispatches
//
//	POST   /activities/{name}/signup?email=...
//	DELETE /activities/{name}/unregister?email=...
//
// Activity names may contain spaces; the path arrives percent-decoded.
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		http.NotFound(w, r)
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch {
	case action == "signup" && r.Method == http.MethodPost:
		h.handleSignup(w, r, name)
	case action == "unregister" && r.Method == http.MethodDelete:
		h.handleUnregister(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

func (h *RosterHandler) handleSignup(w http.ResponseWriter, r *http.Request, name string) {
	const op = "api.signup"
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, detailMissingEmail)
		return
	}

	err := h.deps.Signup(r.Context(), name, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, repository.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, detailAlreadySignedUp)
	case err != nil:
		logger.Get().Error(r.Context(), "signup failed", logger.Error(Wrap(op, err)))
		writeError(w, http.StatusInternalServerError, "")
	default:
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		})
	}
}

func (h *RosterHandler) handleUnregister(w http.ResponseWriter, r *http.Request, name string) {
	const op = "api.unregister"
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, detailMissingEmail)
		return
	}

	err := h.deps.Unregister(r.Context(), name, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, detailActivityNotFound)
	case errors.Is(err, repository.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, detailNotSignedUp)
	case err != nil:
		logger.Get().Error(r.Context(), "unregister failed", logger.Error(Wrap(op, err)))
		writeError(w, http.StatusInternalServerError, "")
	default:
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	}
}
