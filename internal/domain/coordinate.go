package domain

import "strconv"

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies inside the WGS84 envelope.
// Only real fixes are required to pass; the fallback coordinate always does.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Format renders "lat, lon" with the given number of decimals. The location
// display uses 5, the confirmation view 6.
func (c Coordinate) Format(decimals int) string {
	return strconv.FormatFloat(c.Latitude, 'f', decimals, 64) + ", " +
		strconv.FormatFloat(c.Longitude, 'f', decimals, 64)
}
