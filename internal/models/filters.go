package models

// Bounds is a map viewport rectangle given by its southwest and northeast
// corners, edges inclusive.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// FilterState carries every filter dimension for one recomputation. An
// empty slice leaves that dimension inactive (matches everything), an
// empty or blank query disables text search, and a nil Bounds applies no
// viewport restriction. The zero value selects the entire store.
type FilterState struct {
	Statuses      []StatusLevel `json:"statuses"`
	Categories    []string      `json:"categories"`
	Subcategories []string      `json:"subcategories"`
	Countries     []string      `json:"countries"`
	Affiliations  []string      `json:"affiliations"`
	Query         string        `json:"query"`
	Bounds        *Bounds       `json:"bounds,omitempty"`
}
