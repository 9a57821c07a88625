package smoketest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/activities/pkg/logger"
)

// Run executes the complete smoke test against a live instance.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting activities smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rounds", config.Rounds),
		logger.String("timeout", config.Timeout.String()),
	)

	c := newClient(config.Timeout)

	if err := checkServiceHealth(ctx, c, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	if err := checkRootRedirect(ctx, c, config); err != nil {
		return fmt.Errorf("root redirect check failed: %w", err)
	}

	activities, err := fetchActivities(ctx, c, config)
	if err != nil {
		return fmt.Errorf("activity listing failed: %w", err)
	}
	stats.Activities = len(activities)
	if stats.Activities == 0 {
		return fmt.Errorf("service returned no activities")
	}

	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}

	for i := 0; i < config.Rounds; i++ {
		name := names[i%len(names)]
		email := fmt.Sprintf("smoke-%s@mergington.edu", uuid.NewString()[:8])
		if err := runRound(ctx, c, config, name, email, stats); err != nil {
			stats.Failures++
			logger.Get().Error(ctx, "smoke round failed",
				logger.String("activity", name),
				logger.String("email", email),
				logger.Error(err),
			)
		}
	}

	// Capacity is advertised, never enforced; report rosters above it.
	final, err := fetchActivities(ctx, c, config)
	if err != nil {
		return fmt.Errorf("final activity listing failed: %w", err)
	}
	for name, a := range final {
		if len(a.Participants) > a.MaxParticipants {
			stats.OverCapacity++
			logger.Get().Warn(ctx, "roster above advertised capacity",
				logger.String("activity", name),
				logger.Int("participants", len(a.Participants)),
				logger.Int("maxParticipants", a.MaxParticipants),
			)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	if stats.Failures > 0 {
		return fmt.Errorf("%d of %d rounds failed", stats.Failures, config.Rounds)
	}
	logger.Get().Info(ctx, "smoke run completed successfully")
	return nil
}

// runRound signs a generated email up, asserts the duplicate rejection,
// unregisters, and asserts the absent rejection.
func runRound(ctx context.Context, c *client, config *Config, name, email string, stats *Stats) error {
	if err := expectRoster(ctx, c, config, http.MethodPost, name, "signup", email, http.StatusOK); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	stats.Signups++

	if err := expectRoster(ctx, c, config, http.MethodPost, name, "signup", email, http.StatusBadRequest); err != nil {
		return fmt.Errorf("duplicate signup: %w", err)
	}
	stats.DuplicateRejects++

	listed, err := fetchActivities(ctx, c, config)
	if err != nil {
		return fmt.Errorf("listing after signup: %w", err)
	}
	if !contains(listed[name].Participants, email) {
		return fmt.Errorf("email %s missing from %s roster after signup", email, name)
	}

	if err := expectRoster(ctx, c, config, http.MethodDelete, name, "unregister", email, http.StatusOK); err != nil {
		return fmt.Errorf("unregister: %w", err)
	}
	stats.Unregisters++

	if err := expectRoster(ctx, c, config, http.MethodDelete, name, "unregister", email, http.StatusBadRequest); err != nil {
		return fmt.Errorf("absent unregister: %w", err)
	}
	stats.AbsentRejects++
	return nil
}

// expectRoster performs one roster mutation and checks the status code.
func expectRoster(ctx context.Context, c *client, config *Config, method, name, action, email string, want int) error {
	u := rosterURL(config.BaseURL, name, action, email)

	var resp *http.Response
	var err error
	if method == http.MethodPost {
		resp, err = c.Post(ctx, u)
	} else {
		resp, err = c.Delete(ctx, u)
	}
	if err != nil {
		return err
	}
	defer closeBody(ctx, resp)

	if resp.StatusCode != want {
		return fmt.Errorf("%s %s: got status %d, want %d", method, u, resp.StatusCode, want)
	}
	if config.Verbose {
		logger.Get().Debug(ctx, "roster call ok",
			logger.String("method", method),
			logger.String("activity", name),
			logger.String("action", action),
			logger.Int("status", resp.StatusCode),
		)
	}
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, c *client, config *Config) error {
	resp, err := c.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer closeBody(ctx, resp)

	// Any 200 is healthy; the body is Prometheus exposition text.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// checkRootRedirect verifies GET / answers with a 307 to the UI index.
func checkRootRedirect(ctx context.Context, c *client, config *Config) error {
	resp, err := c.Get(ctx, config.BaseURL+"/")
	if err != nil {
		return err
	}
	defer closeBody(ctx, resp)

	if resp.StatusCode != http.StatusTemporaryRedirect {
		return fmt.Errorf("root returned status %d, want %d", resp.StatusCode, http.StatusTemporaryRedirect)
	}
	if loc := resp.Header.Get("Location"); loc != "/static/index.html" {
		return fmt.Errorf("root redirects to %q, want /static/index.html", loc)
	}
	return nil
}

// fetchActivities retrieves and decodes GET /activities.
func fetchActivities(ctx context.Context, c *client, config *Config) (map[string]Activity, error) {
	resp, err := c.Get(ctx, config.BaseURL+"/activities")
	if err != nil {
		return nil, err
	}
	defer closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing returned status %d", resp.StatusCode)
	}
	var out map[string]Activity
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.Get().Error(ctx, "failed to close response body", logger.Error(err))
	}
}

// displayFinalStats prints the final smoke statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("activities", stats.Activities),
		logger.Int("signups", stats.Signups),
		logger.Int("duplicateRejects", stats.DuplicateRejects),
		logger.Int("unregisters", stats.Unregisters),
		logger.Int("absentRejects", stats.AbsentRejects),
		logger.Int("overCapacity", stats.OverCapacity),
		logger.Int("failures", stats.Failures),
		logger.String("duration", stats.Duration.String()),
	)
}
