package store

import (
	"sort"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// Store is the immutable stakeholder table, built once at startup. Every
// record it holds has a non-empty country, a normalized status and
// resolved coordinates. It is safe to share across concurrent reads.
type Store struct {
	records       []models.Record
	categories    []string
	subcategories []string
	countries     []string
	affiliations  []string
}

// Build runs the load-time pipeline over the raw rows: normalize status,
// drop rows without a country, derive the location key, join coordinates
// from the geocode cache and drop rows the cache cannot resolve. Rows
// either survive or are silently excluded; no row ever raises an error.
// The surviving set also yields the sorted distinct option universes for
// the categorical filters.
func Build(rows []models.Row, cache models.GeocodeCache) *Store {
	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		if row.Country == "" {
			continue
		}
		location := LocationKey(row.City, row.Country)
		coord, ok := cache[location]
		if !ok {
			continue
		}
		records = append(records, models.Record{
			Name:        row.Name,
			Position:    row.Position,
			Affiliation: row.Affiliation,
			Department:  row.Department,
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Country:     row.Country,
			City:        row.City,
			RawStatus:   row.Status,
			Status:      models.NormalizeStatus(row.Status),
			Location:    location,
			Latitude:    coord.Latitude,
			Longitude:   coord.Longitude,
		})
	}

	return &Store{
		records:       records,
		categories:    distinctSorted(records, func(r models.Record) string { return r.Category }),
		subcategories: distinctSorted(records, func(r models.Record) string { return r.Subcategory }),
		countries:     distinctSorted(records, func(r models.Record) string { return r.Country }),
		affiliations:  distinctSorted(records, func(r models.Record) string { return r.Affiliation }),
	}
}

// LocationKey derives the geocode join key for a row.
func LocationKey(city, country string) string {
	if city != "" {
		return city + ", " + country
	}
	return country
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the stored records in load order. The slice is shared;
// callers must treat it as read-only.
func (s *Store) Records() []models.Record {
	return s.records
}

// Categories returns the sorted distinct category values.
func (s *Store) Categories() []string {
	return copyStrings(s.categories)
}

// Subcategories returns the sorted distinct subcategory values.
func (s *Store) Subcategories() []string {
	return copyStrings(s.subcategories)
}

// Countries returns the sorted distinct country values.
func (s *Store) Countries() []string {
	return copyStrings(s.countries)
}

// Affiliations returns the sorted distinct affiliation values.
func (s *Store) Affiliations() []string {
	return copyStrings(s.affiliations)
}

func distinctSorted(records []models.Record, field func(models.Record) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func copyStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
