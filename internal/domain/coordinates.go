package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in WGS84 degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for chart and GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Planar distance in degrees. Only meaningful for ranking nearby points.
func (c Coordinates) degreeDistance(o Coordinates) float64 {
	return math.Hypot(c.Lat-o.Lat, c.Lon-o.Lon)
}

// Planar position in the Dutch national grid, in meters.
type RDPoint struct {
	X float64
	Y float64
}
