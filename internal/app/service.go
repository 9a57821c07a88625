// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service owns the activity registry and exposes the operations the HTTP
// API depends on.
type Service struct {
	mu sync.RWMutex

	registry repository.Registry
	seed     []model.Activity

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed replaces the default activity catalog loaded at Start.
func WithSeed(seed []model.Activity) Option {
	return func(s *Service) {
		if len(seed) > 0 {
			s.seed = seed
		}
	}
}

// WithRegistry injects a pre-built registry, mainly for tests.
func WithRegistry(r repository.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seed: repository.DefaultSeed(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the registry and primes the roster gauges.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.registry == nil {
		s.registry = repository.NewMemoryRegistry(repository.WithSeed(s.seed))
	}
	s.started = true
	s.startedAt = time.Now()

	s.publishGauges(ctx)
	s.logger.Info(ctx, "activity registry started",
		logger.Int("activities", s.registry.Count(ctx)),
	)
	return nil
}

// Stop shuts the service down. The registry has no external resources, so
// this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "activity registry stopped")
}

// ListActivities returns every activity record.
func (s *Service) ListActivities(ctx context.Context) ([]model.Activity, error) {
	return s.registry.List(ctx)
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	if err := s.registry.Signup(ctx, name, email); err != nil {
		return err
	}
	metrics.RecordSignup()
	s.publishGauges(ctx)
	s.logger.Debug(ctx, "participant signed up",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	if err := s.registry.Unregister(ctx, name, email); err != nil {
		return err
	}
	metrics.RecordUnregister()
	s.publishGauges(ctx)
	s.logger.Debug(ctx, "participant unregistered",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return nil
}

// GetStats returns service statistics for the /stats endpoint and the
// background metrics updater.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()

	s.mu.RLock()
	startedAt := s.startedAt
	started := s.started
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": started,
	}
	if started {
		stats["uptimeSeconds"] = int(time.Since(startedAt).Seconds())
	}

	sizes := s.registry.RosterSizes(ctx)
	total := 0
	for _, n := range sizes {
		total += n
	}
	stats["totalActivities"] = s.registry.Count(ctx)
	stats["totalParticipants"] = total
	stats["rosterSizes"] = sizes
	return stats
}

// publishGauges pushes roster sizes into the metrics gauges.
func (s *Service) publishGauges(ctx context.Context) {
	sizes := s.registry.RosterSizes(ctx)
	total := 0
	for name, n := range sizes {
		metrics.UpdateRosterSize(name, n)
		total += n
	}
	metrics.UpdateTotalActivities(len(sizes))
	metrics.UpdateTotalParticipants(total)
}
