package repository

import (
	"database/sql"
	"fmt"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// GeocodeRepository persists the geocode-cache table. The server only
// reads it; the batch geocoder writes it.
type GeocodeRepository struct {
	db *sql.DB
}

// NewGeocodeRepository creates a new geocode repository.
func NewGeocodeRepository(db *sql.DB) *GeocodeRepository {
	return &GeocodeRepository{db: db}
}

// LoadCache loads every resolved entry into an in-memory cache. Entries
// recorded as unresolved are left out, so records joining against them are
// excluded at store build time.
func (r *GeocodeRepository) LoadCache() (models.GeocodeCache, error) {
	rows, err := r.db.Query(`
		SELECT location, latitude, longitude
		FROM geocode_cache
		WHERE resolved = 1
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load geocode cache: %w", err)
	}
	defer rows.Close()

	cache := make(models.GeocodeCache)
	for rows.Next() {
		var location string
		var lat, lng float64
		if err := rows.Scan(&location, &lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan geocode entry: %w", err)
		}
		cache[location] = models.Coordinate{Latitude: lat, Longitude: lng}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read geocode cache: %w", err)
	}

	return cache, nil
}

// Locations returns every location already attempted, resolved or not, so
// the geocoder can skip them.
func (r *GeocodeRepository) Locations() (map[string]bool, error) {
	rows, err := r.db.Query(`SELECT location FROM geocode_cache`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached locations: %w", err)
	}
	defer rows.Close()

	known := make(map[string]bool)
	for rows.Next() {
		var location string
		if err := rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("failed to scan cached location: %w", err)
		}
		known[location] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cached locations: %w", err)
	}

	return known, nil
}

// Upsert stores a geocoding result. A nil coordinate records the location
// as attempted but unresolved.
func (r *GeocodeRepository) Upsert(location string, coord *models.Coordinate) error {
	var lat, lng sql.NullFloat64
	resolved := 0
	if coord != nil {
		lat = sql.NullFloat64{Float64: coord.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: coord.Longitude, Valid: true}
		resolved = 1
	}

	_, err := r.db.Exec(`
		INSERT INTO geocode_cache (location, latitude, longitude, resolved, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(location) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			resolved = excluded.resolved,
			updated_at = CURRENT_TIMESTAMP
	`, location, lat, lng, resolved)
	if err != nil {
		return fmt.Errorf("failed to upsert geocode entry: %w", err)
	}

	return nil
}

// All returns every entry, resolved or not; unresolved entries carry a nil
// coordinate. Used for JSON export.
func (r *GeocodeRepository) All() (map[string]*models.Coordinate, error) {
	rows, err := r.db.Query(`SELECT location, latitude, longitude, resolved FROM geocode_cache`)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode cache: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]*models.Coordinate)
	for rows.Next() {
		var location string
		var lat, lng sql.NullFloat64
		var resolved int
		if err := rows.Scan(&location, &lat, &lng, &resolved); err != nil {
			return nil, fmt.Errorf("failed to scan geocode entry: %w", err)
		}
		if resolved == 1 && lat.Valid && lng.Valid {
			entries[location] = &models.Coordinate{Latitude: lat.Float64, Longitude: lng.Float64}
		} else {
			entries[location] = nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read geocode cache: %w", err)
	}

	return entries, nil
}
