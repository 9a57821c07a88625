// Package model contains domain records passed between layers.
package model

// Activity is a named extracurricular offering with a participant roster.
// The activity set is fixed at boot; only Participants mutates afterwards.
type Activity struct {
	Name            string   // unique registry key
	Description     string   // human-readable summary
	Schedule        string   // free-form schedule text
	MaxParticipants int      // advertised capacity, informational only
	Participants    []string // ordered roster of unique emails
}

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// AddParticipant appends email to the roster. Returns false when the email
// is already present, preserving the no-duplicates invariant.
func (a *Activity) AddParticipant(email string) bool {
	if a.HasParticipant(email) {
		return false
	}
	a.Participants = append(a.Participants, email)
	return true
}

// RemoveParticipant removes email from the roster, keeping order of the
// remaining entries. Returns false when the email is not present.
func (a *Activity) RemoveParticipant(email string) bool {
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate registry state
// through a returned record.
func (a *Activity) Clone() Activity {
	out := *a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
