package aggregate

import (
	"fmt"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// Groups use exact float equality on the stored coordinates. Two nearby
// geocodes never merge; there is no snapping or tolerance.
type coordKey struct {
	lat float64
	lng float64
}

// Markers groups filtered records by exact coordinate into one marker per
// distinct location, ordered by first encounter while scanning in store
// order. selected is the active status filter: when it holds exactly one
// status, every marker takes that status's color; otherwise a marker takes
// the color of its first member's status.
func Markers(records []models.Record, selected []models.StatusLevel) []models.MarkerGroup {
	var order []coordKey
	members := make(map[coordKey][]models.Record)
	for _, rec := range records {
		k := coordKey{rec.Latitude, rec.Longitude}
		if _, seen := members[k]; !seen {
			order = append(order, k)
		}
		members[k] = append(members[k], rec)
	}

	single := len(selected) == 1

	out := make([]models.MarkerGroup, 0, len(order))
	for _, k := range order {
		group := members[k]
		color := group[0].Status.Color()
		if single {
			color = selected[0].Color()
		}
		out = append(out, models.MarkerGroup{
			ID:        fmt.Sprintf("marker-%.5f-%.5f", k.lat, k.lng),
			Latitude:  k.lat,
			Longitude: k.lng,
			Count:     len(group),
			Radius:    Radius(len(group)),
			Color:     color,
			Tooltip:   tooltip(group),
			Popup:     popup(group),
		})
	}
	return out
}

// Radius maps member count to marker radius. Growth is linear and capped
// at ten members.
func Radius(count int) int {
	if count > 10 {
		count = 10
	}
	return 8 + 2*count
}

func tooltip(group []models.Record) string {
	if len(group) == 1 {
		return group[0].Name
	}
	return fmt.Sprintf("%d people", len(group))
}

func popup(group []models.Record) models.Popup {
	if len(group) == 1 {
		rec := group[0]
		return models.Popup{
			Title: rec.Name,
			Lines: []string{rec.Position, rec.Affiliation, rec.Location},
		}
	}
	lines := make([]string, 0, len(group))
	for _, rec := range group {
		lines = append(lines, fmt.Sprintf("%s (%s)", rec.Name, rec.Status))
	}
	return models.Popup{
		Title: fmt.Sprintf("%d people here", len(group)),
		Lines: lines,
	}
}
