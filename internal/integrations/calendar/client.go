package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnavailable wraps any transport or decode failure. Callers treat it as
// "no known conflicts" rather than failing the request.
var ErrUnavailable = errors.New("calendar unavailable")

type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether ts falls inside the busy interval (start
// inclusive, end exclusive).
func (iv Interval) Contains(ts time.Time) bool {
	return !ts.Before(iv.Start) && ts.Before(iv.End)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type busyResponse struct {
	Busy []Interval `json:"busy"`
}

// GetBusyIntervals fetches the busy intervals the studio calendar reports
// for a business date (YYYY-MM-DD).
func (c *Client) GetBusyIntervals(ctx context.Context, date string) ([]Interval, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/busy?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body busyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return body.Busy, nil
}
