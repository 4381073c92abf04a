package httpx

import (
	"context"
	"net/http"
)

const (
	healthPath   = "/health"
	fallbackPath = "/courses/published"
)

// Probe checks whether the backend is reachable. The result is a hint for
// user messaging, not an authoritative signal; callers must not treat a
// false as a hard stop.
type Probe struct {
	client  *http.Client
	baseURL string
}

func NewProbe(client *http.Client, baseURL string) *Probe {
	if client == nil {
		client = http.DefaultClient
	}
	return &Probe{client: client, baseURL: baseURL}
}

// Check issues a no-cache GET against the health endpoint, falling back to
// the published-courses endpoint. It returns false only when both fail.
func (p *Probe) Check(ctx context.Context) bool {
	if p.reachable(ctx, p.baseURL+healthPath) {
		return true
	}
	return p.reachable(ctx, p.baseURL+fallbackPath)
}

func (p *Probe) reachable(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
