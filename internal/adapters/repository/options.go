// Package repository defines the activity registry interface and errors.
package repository

import (
	"github.com/mergington/activities/internal/domain/model"
)

// Option applies a configuration option to the memory registry.
type Option func(*memoryRegistry)

// WithSeed loads the given activities into the registry at construction.
func WithSeed(seed []model.Activity) Option {
	return func(r *memoryRegistry) {
		r.seedWith(seed)
	}
}
