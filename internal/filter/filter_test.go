package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/store"
)

func testStore() *store.Store {
	rows := []models.Row{
		{Name: "John Miller", Position: "Professor", Affiliation: "CSIRO", Category: "Research", Subcategory: "Food", Country: "Australia", City: "Canberra", Status: "Keynote Speaker"},
		{Name: "Marie Durand", Position: "Engineer", Affiliation: "Acme", Category: "Industry", Subcategory: "Feed", Country: "France", City: "Paris", Status: "Sponsor"},
		{Name: "Lars Olsen", Position: "Analyst", Affiliation: "Acme", Category: "Industry", Country: "Norway", Status: "TBC"},
		{Name: "Wei Chen", Affiliation: "Uni", Category: "Research", Country: "Australia", City: "Canberra", Status: "declined"},
	}
	cache := models.GeocodeCache{
		"Canberra, Australia": {Latitude: -35.28, Longitude: 149.13},
		"Paris, France":       {Latitude: 48.85, Longitude: 2.35},
		"Norway":              {Latitude: 60.47, Longitude: 8.46},
	}
	return store.Build(rows, cache)
}

func names(records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestApplyEmptyStateIsIdentity(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{})
	require.Len(t, got, s.Len())
	assert.Equal(t, s.Records(), got)
}

func TestApplyStatusFilter(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{Statuses: []models.StatusLevel{models.StatusSponsor}})
	assert.Equal(t, []string{"Marie Durand"}, names(got))
}

func TestApplyCategoricalFilters(t *testing.T) {
	s := testStore()

	got := Apply(s, models.FilterState{Categories: []string{"Industry"}})
	assert.Equal(t, []string{"Marie Durand", "Lars Olsen"}, names(got))

	got = Apply(s, models.FilterState{Subcategories: []string{"Food"}})
	assert.Equal(t, []string{"John Miller"}, names(got))

	got = Apply(s, models.FilterState{Countries: []string{"Australia", "France"}})
	assert.Equal(t, []string{"John Miller", "Marie Durand", "Wei Chen"}, names(got))

	got = Apply(s, models.FilterState{Affiliations: []string{"Acme"}})
	assert.Equal(t, []string{"Marie Durand", "Lars Olsen"}, names(got))
}

func TestApplyComposesWithAND(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{
		Categories: []string{"Industry"},
		Countries:  []string{"France"},
	})
	assert.Equal(t, []string{"Marie Durand"}, names(got))
}

func TestApplyIsMonotonic(t *testing.T) {
	s := testStore()
	base := models.FilterState{Categories: []string{"Research"}}
	narrowed := models.FilterState{
		Categories: []string{"Research"},
		Countries:  []string{"Australia"},
		Statuses:   []models.StatusLevel{models.StatusKeynoteSpeaker},
	}
	assert.LessOrEqual(t, len(Apply(s, narrowed)), len(Apply(s, base)))
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{Query: "miller"})
	assert.Equal(t, []string{"John Miller"}, names(got))
}

func TestApplySearchAcrossFields(t *testing.T) {
	s := testStore()

	// Affiliation match.
	got := Apply(s, models.FilterState{Query: "acme"})
	assert.Equal(t, []string{"Marie Durand", "Lars Olsen"}, names(got))

	// City match.
	got = Apply(s, models.FilterState{Query: "canberra"})
	assert.Equal(t, []string{"John Miller", "Wei Chen"}, names(got))

	// Position match; empty fields never match but never error.
	got = Apply(s, models.FilterState{Query: "analyst"})
	assert.Equal(t, []string{"Lars Olsen"}, names(got))
}

func TestApplySearchLiteralNotPattern(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{Query: ".*"})
	assert.Empty(t, got)
}

func TestApplyBlankSearchMatchesAll(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{Query: "   "})
	assert.Len(t, got, s.Len())
}

func TestApplyNoMatchIsEmptyNotError(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{
		Countries: []string{"France"},
		Query:     "miller",
	})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWithinBounds(t *testing.T) {
	records := []models.Record{
		{Name: "inside", Latitude: 30, Longitude: 0},
		{Name: "north of", Latitude: 60, Longitude: 0},
		{Name: "edge", Latitude: 50, Longitude: 10},
	}
	b := &models.Bounds{South: 0, West: -10, North: 50, East: 10}

	got := WithinBounds(records, b)
	assert.Equal(t, []string{"inside", "edge"}, names(got))

	// nil bounds is a no-op.
	assert.Equal(t, records, WithinBounds(records, nil))
}

func TestWithinBoundsWideViewport(t *testing.T) {
	// A viewport wider than 180 degrees must still mean [west, east], not
	// the shorter arc around the antimeridian.
	records := []models.Record{
		{Name: "greenwich", Latitude: 0, Longitude: 0},
		{Name: "fiji", Latitude: -18, Longitude: 178},
	}

	wide := &models.Bounds{South: -60, West: -170, North: 60, East: 170}
	got := WithinBounds(records, wide)
	assert.Equal(t, []string{"greenwich"}, names(got))
}

func TestWithinBoundsWorldViewport(t *testing.T) {
	// The fixed zoom-1 world view reports west=-180, east=180; every
	// record is visible.
	records := []models.Record{
		{Name: "greenwich", Latitude: 0, Longitude: 0},
		{Name: "fiji", Latitude: -18, Longitude: 178},
		{Name: "samoa", Latitude: -13, Longitude: -172},
	}

	world := &models.Bounds{South: -90, West: -180, North: 90, East: 180}
	assert.Equal(t, records, WithinBounds(records, world))
}

func TestApplyWithBounds(t *testing.T) {
	s := testStore()
	got := Apply(s, models.FilterState{
		Bounds: &models.Bounds{South: 40, West: -10, North: 70, East: 20},
	})
	assert.Equal(t, []string{"Marie Durand", "Lars Olsen"}, names(got))
}
