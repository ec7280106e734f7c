package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// The JSON cache artifact maps a location to a [latitude, longitude] pair.
// Unresolved locations carry [null, null].

// LoadJSONCache reads a JSON cache file into an in-memory cache. Entries
// with null or missing coordinates are treated as unresolved and dropped.
func LoadJSONCache(path string) (models.GeocodeCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode cache file: %w", err)
	}

	var raw map[string][]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse geocode cache file: %w", err)
	}

	cache := make(models.GeocodeCache, len(raw))
	for location, pair := range raw {
		if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
			continue
		}
		cache[location] = models.Coordinate{Latitude: *pair[0], Longitude: *pair[1]}
	}
	return cache, nil
}

// WriteJSONCache writes cache entries back out in the JSON artifact
// format; unresolved entries (nil coordinate) become [null, null].
func WriteJSONCache(path string, entries map[string]*models.Coordinate) error {
	raw := make(map[string][]*float64, len(entries))
	for location, coord := range entries {
		if coord == nil {
			raw[location] = []*float64{nil, nil}
			continue
		}
		lat, lng := coord.Latitude, coord.Longitude
		raw[location] = []*float64{&lat, &lng}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode geocode cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geocode cache file: %w", err)
	}
	return nil
}
