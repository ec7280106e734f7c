package models

// Coordinate is a geocoded latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodeCache maps a derived location key ("City, Country" or bare
// country) to its coordinate. A missing entry means the location was never
// geocoded or could not be resolved; records joining against a missing
// entry are excluded at load time, never reported as errors.
type GeocodeCache map[string]Coordinate
