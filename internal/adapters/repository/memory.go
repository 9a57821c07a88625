package repository

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
)

// memoryRegistry is the in-process Registry implementation. The activity set
// never changes after construction; only rosters mutate, guarded by mu since
// net/http serves requests on concurrent goroutines.
type memoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	order      []string // seed order, kept stable for List
}

// NewMemoryRegistry builds a registry holding the given seed. Later seed
// entries with a duplicate name replace earlier ones.
func NewMemoryRegistry(opts ...Option) Registry {
	r := &memoryRegistry{
		activities: make(map[string]*model.Activity),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *memoryRegistry) seedWith(seed []model.Activity) {
	for _, a := range seed {
		if a.Name == "" {
			continue
		}
		c := a.Clone()
		if _, exists := r.activities[a.Name]; !exists {
			r.order = append(r.order, a.Name)
		}
		r.activities[a.Name] = &c
	}
}

func (r *memoryRegistry) List(_ context.Context) ([]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name].Clone())
	}
	return out, nil
}

func (r *memoryRegistry) Get(_ context.Context, name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

func (r *memoryRegistry) Signup(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	if !a.AddParticipant(email) {
		return ErrAlreadySignedUp
	}
	return nil
}

func (r *memoryRegistry) Unregister(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrNotFound
	}
	if !a.RemoveParticipant(email) {
		return ErrNotSignedUp
	}
	return nil
}

func (r *memoryRegistry) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

func (r *memoryRegistry) RosterSizes(_ context.Context) map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sizes := make(map[string]int, len(r.activities))
	for name, a := range r.activities {
		sizes[name] = len(a.Participants)
	}
	return sizes
}
