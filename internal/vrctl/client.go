package vrctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vrhal/pkg/types"
)

// Client talks to a running vrhald diagnostics API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient builds a client with a sane request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Status fetches the daemon status snapshot.
func (c *Client) Status(ctx context.Context) (types.StatusResponse, error) {
	var st types.StatusResponse
	err := c.getJSON(ctx, "/status", &st)
	return st, err
}

// Trackers fetches the current tracker list.
func (c *Client) Trackers(ctx context.Context) ([]types.TrackerStatus, error) {
	var resp struct {
		Trackers []types.TrackerStatus `json:"trackers"`
	}
	if err := c.getJSON(ctx, "/trackers", &resp); err != nil {
		return nil, err
	}
	return resp.Trackers, nil
}

// Tracker fetches a single slot.
func (c *Client) Tracker(ctx context.Context, slot uint32) (types.TrackerStatus, error) {
	var tr types.TrackerStatus
	err := c.getJSON(ctx, fmt.Sprintf("/trackers/%d", slot), &tr)
	return tr, err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr types.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("GET %s: %s (status %d)", path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
