package smoketest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// client is a thin HTTP wrapper that threads contexts through requests.
type client struct {
	http *http.Client
}

func newClient(timeout time.Duration) *client {
	return &client{http: &http.Client{
		Timeout: timeout,
		// Redirects are part of what the smoke run asserts on.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
}

func (c *client) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, rawURL, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	return resp, nil
}

func (c *client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, rawURL)
}

func (c *client) Post(ctx context.Context, rawURL string) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, rawURL)
}

func (c *client) Delete(ctx context.Context, rawURL string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, rawURL)
}

// rosterURL builds /activities/{name}/{action}?email=... with escaping.
func rosterURL(baseURL, name, action, email string) string {
	return fmt.Sprintf("%s/activities/%s/%s?email=%s",
		baseURL, url.PathEscape(name), action, url.QueryEscape(email))
}
