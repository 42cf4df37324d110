package models

import "math"

// Coordinate is a WGS84 point on the map.
type Coordinate struct {
	// Latitude in decimal degrees, valid range [-90, 90].
	Latitude float64 `json:"lat"`

	// Longitude in decimal degrees, valid range [-180, 180].
	Longitude float64 `json:"lng"`
}

// Valid reports whether the coordinate is finite and inside the WGS84
// latitude/longitude bounds.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
