// Package repository defines the activity registry interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Registry provides read/write access to the activity rosters.
type Registry interface {
	// List returns a copy of every activity record.
	List(ctx context.Context) ([]model.Activity, error)

	// Get returns a copy of one activity.
	// Returns ErrNotFound if the activity is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the activity's roster.
	// Returns ErrNotFound for an unknown activity and ErrAlreadySignedUp
	// when the email is already on the roster.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the activity's roster.
	// Returns ErrNotFound for an unknown activity and ErrNotSignedUp when
	// the email is not on the roster.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int

	// RosterSizes returns the current participant count per activity.
	RosterSizes(ctx context.Context) map[string]int
}
