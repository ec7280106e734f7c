package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// Client resolves free-text locations against a Nominatim endpoint. It
// enforces a minimum delay between requests and retries failed requests a
// bounded number of times. The dashboard server never uses it; only the
// batch geocoder does.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	MinDelay  time.Duration
	Retries   int

	last time.Time
}

// NewClient creates a client with the public Nominatim endpoint and the
// usage-policy pacing of one request per second.
func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		BaseURL:   "https://nominatim.openstreetmap.org/search",
		UserAgent: "extrusion_map",
		MinDelay:  time.Second,
		Retries:   3,
	}
}

// Geocode resolves a location to a coordinate. A nil coordinate with a nil
// error means the service had no match; callers record that as an
// unresolved cache entry, not an error.
func (c *Client) Geocode(ctx context.Context, location string) (*models.Coordinate, error) {
	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if err := c.throttle(ctx); err != nil {
			return nil, err
		}
		coord, err := c.search(ctx, location)
		if err == nil {
			return coord, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to geocode %q: %w", location, lastErr)
}

func (c *Client) throttle(ctx context.Context) error {
	wait := c.MinDelay - time.Since(c.last)
	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.last = time.Now()
	return nil
}

func (c *Client) search(ctx context.Context, location string) (*models.Coordinate, error) {
	params := url.Values{
		"q":      {location},
		"format": {"json"},
		"limit":  {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	return &models.Coordinate{Latitude: lat, Longitude: lng}, nil
}
