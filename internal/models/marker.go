package models

// Popup is the marker popup content. A single-member marker carries the
// member's name as title and their detail lines; a multi-member marker
// carries a "N people here" title and one line per member, meant for a
// scrollable list.
type Popup struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// MarkerGroup is one map marker: every filtered record sharing an exact
// coordinate, with its derived display attributes.
type MarkerGroup struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int     `json:"count"`
	Radius    int     `json:"radius"`
	Color     string  `json:"color"`
	Tooltip   string  `json:"tooltip"`
	Popup     Popup   `json:"popup"`
}
