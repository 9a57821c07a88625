// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/mergington/activities/pkg/logger"
)

// ActivitiesHandler handles activity listing requests.
type ActivitiesHandler struct {
	deps Dependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps Dependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleListActivities handles GET /activities requests. The response is an
// object keyed by activity name.
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_activities"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	records, err := h.deps.ListActivities(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "listing activities failed", logger.Error(Wrap(op, err)))
		writeError(w, http.StatusInternalServerError, "")
		return
	}

	out := make(map[string]activityDetail, len(records))
	for _, a := range records {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		out[a.Name] = activityDetail{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
