package models

// TileLayer describes the base map tile source.
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// MarkerStyle holds the fixed circle-marker styling shared by all markers.
type MarkerStyle struct {
	FillOpacity float64 `json:"fill_opacity"`
	Weight      int     `json:"weight"`
}

// MapView is the map projection: base tile layer, fixed center and zoom,
// marker styling, and one marker per coordinate group. The center is a
// constant; the map never recenters on data.
type MapView struct {
	Tile    TileLayer     `json:"tile"`
	Center  [2]float64    `json:"center"`
	Zoom    int           `json:"zoom"`
	Style   MarkerStyle   `json:"style"`
	Markers []MarkerGroup `json:"markers"`
}

// LegendSwatch pairs a status with its fixed color.
type LegendSwatch struct {
	Status StatusLevel `json:"status"`
	Color  string      `json:"color"`
}

// TableRow is one visible stakeholder in the table projection.
type TableRow struct {
	Name        string      `json:"name"`
	Position    string      `json:"position"`
	Affiliation string      `json:"affiliation"`
	Country     string      `json:"country"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Status      StatusLevel `json:"status"`
}

// DashboardViews bundles the three projections. They are always derived
// from one filtered set so the map, legend and table cannot disagree.
type DashboardViews struct {
	Map    MapView        `json:"map"`
	Legend []LegendSwatch `json:"legend"`
	Table  []TableRow     `json:"table"`
}

// FilterOptions lists the selectable universe for every filter dimension,
// derived from the record store at load time.
type FilterOptions struct {
	Statuses      []LegendSwatch `json:"statuses"`
	Categories    []string       `json:"categories"`
	Subcategories []string       `json:"subcategories"`
	Countries     []string       `json:"countries"`
	Affiliations  []string       `json:"affiliations"`
}
