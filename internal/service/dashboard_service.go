package service

import (
	"github.com/jpennells/stakeholder-map-go/internal/aggregate"
	"github.com/jpennells/stakeholder-map-go/internal/filter"
	"github.com/jpennells/stakeholder-map-go/internal/models"
	"github.com/jpennells/stakeholder-map-go/internal/store"
	"github.com/jpennells/stakeholder-map-go/internal/view"
)

// DashboardService derives the read-only projections from the immutable
// record store. Every request recomputes from scratch; nothing is cached
// between filter-state changes.
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// Views computes the map, legend and table projections from one filtered
// set, so the three can never disagree. The viewport bounds restrict only
// the table; markers and legend always cover the full filtered set.
func (s *DashboardService) Views(state models.FilterState) models.DashboardViews {
	base := state
	base.Bounds = nil
	filtered := filter.Apply(s.store, base)

	markers := aggregate.Markers(filtered, state.Statuses)
	visible := filter.WithinBounds(filtered, state.Bounds)

	return models.DashboardViews{
		Map:    view.Map(markers),
		Legend: view.Legend(state.Statuses),
		Table:  view.Table(visible),
	}
}

// FilterOptions exposes the selectable universe for every dimension, plus
// the fixed status palette.
func (s *DashboardService) FilterOptions() models.FilterOptions {
	return models.FilterOptions{
		Statuses:      view.Legend(nil),
		Categories:    s.store.Categories(),
		Subcategories: s.store.Subcategories(),
		Countries:     s.store.Countries(),
		Affiliations:  s.store.Affiliations(),
	}
}
