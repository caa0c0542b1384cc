package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Signaler notifies the surrounding framework that cached renderings of a
// path are stale. Signals are fire-and-forget: failures are logged by the
// implementation and never surfaced to callers.
type Signaler interface {
	Signal(ctx context.Context, path string)
}

// HTTPSignaler posts revalidation requests to the frontend's on-demand
// revalidation endpoint.
type HTTPSignaler struct {
	endpoint string
	secret   string
	client   *http.Client
}

func NewHTTPSignaler(endpoint, secret string) *HTTPSignaler {
	return &HTTPSignaler{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *HTTPSignaler) Signal(ctx context.Context, path string) {
	body, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		log.Printf("[Revalidate] failed to encode payload for %s: %v", path, err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("[Revalidate] failed to build request for %s: %v", path, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.secret))

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Revalidate] signal for %s failed: %v", path, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[Revalidate] signal for %s returned status %d", path, resp.StatusCode)
	}
}

// Noop discards signals. Used when no revalidation endpoint is configured.
type Noop struct{}

func (Noop) Signal(ctx context.Context, path string) {}
