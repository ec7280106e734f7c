package filter

import (
	"strings"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/store"
)

// Apply evaluates the filter state as a logical AND over every record in
// the store, preserving store order. Each categorical dimension matches
// everything when its selection is empty, so the zero state returns the
// entire store. Matching never errors; an impossible combination just
// yields an empty set.
func Apply(s *store.Store, state models.FilterState) []models.Record {
	rect := boundsRect(state.Bounds)
	query := searchTerm(state.Query)

	out := make([]models.Record, 0, s.Len())
	for _, rec := range s.Records() {
		if !matchesStatus(rec, state.Statuses) {
			continue
		}
		if !inSet(rec.Category, state.Categories) {
			continue
		}
		if !inSet(rec.Subcategory, state.Subcategories) {
			continue
		}
		if !inSet(rec.Country, state.Countries) {
			continue
		}
		if !inSet(rec.Affiliation, state.Affiliations) {
			continue
		}
		if !matchesQuery(rec, query) {
			continue
		}
		if rect != nil && !rect.ContainsLatLng(s2.LatLngFromDegrees(rec.Latitude, rec.Longitude)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// WithinBounds restricts an already filtered set to the viewport
// rectangle, edges inclusive. A nil bounds is a no-op.
func WithinBounds(records []models.Record, b *models.Bounds) []models.Record {
	rect := boundsRect(b)
	if rect == nil {
		return records
	}
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if rect.ContainsLatLng(s2.LatLngFromDegrees(rec.Latitude, rec.Longitude)) {
			out = append(out, rec)
		}
	}
	return out
}

// boundsRect builds the viewport rectangle with explicit intervals. The
// longitude interval runs from west to east as given; growing a rect with
// AddPoint would instead take the shorter arc and wrap a wide viewport
// (west=-180, east=180 at world zoom) around the antimeridian.
func boundsRect(b *models.Bounds) *s2.Rect {
	if b == nil {
		return nil
	}
	sw := s2.LatLngFromDegrees(b.South, b.West)
	ne := s2.LatLngFromDegrees(b.North, b.East)
	rect := s2.Rect{
		Lat: r1.Interval{Lo: sw.Lat.Radians(), Hi: ne.Lat.Radians()},
		Lng: s1.IntervalFromEndpoints(sw.Lng.Radians(), ne.Lng.Radians()),
	}
	return &rect
}

func matchesStatus(rec models.Record, selected []models.StatusLevel) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if rec.Status == s {
			return true
		}
	}
	return false
}

func inSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}

// searchTerm trims and lowercases the free-text query. A blank query
// disables the search dimension.
func searchTerm(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matchesQuery reports whether any searchable field contains the query as
// a literal, case-insensitive substring. Empty fields never match.
func matchesQuery(rec models.Record, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{
		rec.Name,
		rec.Affiliation,
		rec.Category,
		rec.Country,
		rec.City,
		rec.Position,
	} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
