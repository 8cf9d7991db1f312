package player

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"AirFM/model"
)

// Transport fetches the track catalog and names stream URLs for the player.
type Transport interface {
	FetchCatalog(ctx context.Context) ([]model.TrackSummary, error)
	StreamURL(filename string) string
}

// HTTPTransport talks to the streaming server's HTTP API.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTransport creates a transport against baseURL, e.g.
// "http://localhost:9339".
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCatalog retrieves the ordered track list from /api/tracks.
func (t *HTTPTransport) FetchCatalog(ctx context.Context) ([]model.TrackSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/api/tracks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	var list model.TrackList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return list.Tracks, nil
}

// StreamURL returns the stream endpoint for a track filename.
func (t *HTTPTransport) StreamURL(filename string) string {
	return t.baseURL + "/api/stream/" + url.PathEscape(filename)
}
