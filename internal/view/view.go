package view

import "github.com/jpennells/stakeholder-map-go/internal/models"

// Fixed base map. The center never moves with the data.
const (
	TileURL         = "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png"
	TileAttribution = "&copy; CartoDB, ESRI, Stamen"
	DefaultZoom     = 1
)

// DefaultCenter is the fixed map center.
var DefaultCenter = [2]float64{20, 0}

var markerStyle = models.MarkerStyle{
	FillOpacity: 0.8,
	Weight:      1,
}

// Map assembles the map projection for an aggregated marker set.
func Map(markers []models.MarkerGroup) models.MapView {
	if markers == nil {
		markers = []models.MarkerGroup{}
	}
	return models.MapView{
		Tile: models.TileLayer{
			URL:         TileURL,
			Attribution: TileAttribution,
		},
		Center:  DefaultCenter,
		Zoom:    DefaultZoom,
		Style:   markerStyle,
		Markers: markers,
	}
}

// Legend returns one swatch per selected status, in selection order, or
// one per status level in display order when none are selected.
func Legend(selected []models.StatusLevel) []models.LegendSwatch {
	levels := selected
	if len(levels) == 0 {
		levels = models.StatusLevels
	}
	swatches := make([]models.LegendSwatch, 0, len(levels))
	for _, s := range levels {
		swatches = append(swatches, models.LegendSwatch{Status: s, Color: s.Color()})
	}
	return swatches
}

// Table projects individual records, ungrouped, to the fixed table
// column set.
func Table(records []models.Record) []models.TableRow {
	rows := make([]models.TableRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.TableRow{
			Name:        rec.Name,
			Position:    rec.Position,
			Affiliation: rec.Affiliation,
			Country:     rec.Country,
			Category:    rec.Category,
			Subcategory: rec.Subcategory,
			Status:      rec.Status,
		})
	}
	return rows
}
