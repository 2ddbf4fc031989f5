// Package rd converts Dutch national grid (Rijksdriehoeksstelsel) coordinates
// to WGS84 latitude/longitude using the Kadaster polynomial series.
package rd

import (
	"fmt"
	"math"
	"strings"
)

// Reference point of the series expansion.
const (
	refX = 155000.0
	refY = 463000.0

	refPhi    = 52.15517440
	refLambda = 5.38720621

	scale               = 1e-5
	arcSecondsPerDegree = 3600.0
)

// term is one dx^p * dy^q * coeff summand of a series.
type term struct {
	p, q  int
	coeff float64
}

var latSeries = [...]term{
	{0, 1, 3235.65389},
	{2, 0, -32.58297},
	{0, 2, -0.24750},
	{2, 1, -0.84978},
	{0, 3, -0.06550},
	{2, 2, -0.01709},
	{1, 0, -0.00738},
	{4, 0, 0.00530},
	{2, 3, -0.00039},
	{4, 1, 0.00033},
	{1, 1, -0.00012},
}

var lonSeries = [...]term{
	{1, 0, 5260.52916},
	{1, 1, 105.94684},
	{1, 2, 2.45656},
	{3, 0, -0.81885},
	{1, 3, 0.05594},
	{3, 1, -0.05607},
	{0, 1, 0.01199},
	{3, 2, -0.00256},
	{1, 4, 0.00128},
	{0, 2, 0.00022},
	{2, 0, -0.00022},
	{5, 0, 0.00026},
}

// ToWGS84 converts RD (x, y) in meters to (latitude, longitude) in degrees.
//
// Each series is accumulated on top of its reference value and the whole
// accumulator is then divided by 3600. Any float input is accepted; NaN and
// infinities propagate into the result.
func ToWGS84(x, y float64) (lat, lon float64) {
	dx, dy := normalize(x, y)

	phi := accumulate(refPhi, latSeries[:], dx, dy)
	lambda := accumulate(refLambda, lonSeries[:], dx, dy)

	return phi / arcSecondsPerDegree, lambda / arcSecondsPerDegree
}

// ToWGS84Degrees evaluates the same series but treats them as arc-second
// corrections to the reference point: ref + sum/3600.
func ToWGS84Degrees(x, y float64) (lat, lon float64) {
	dx, dy := normalize(x, y)

	phi := accumulate(0, latSeries[:], dx, dy)
	lambda := accumulate(0, lonSeries[:], dx, dy)

	return refPhi + phi/arcSecondsPerDegree, refLambda + lambda/arcSecondsPerDegree
}

func normalize(x, y float64) (dx, dy float64) {
	return (x - refX) * scale, (y - refY) * scale
}

func accumulate(start float64, series []term, dx, dy float64) float64 {
	acc := start
	for _, t := range series {
		acc += t.coeff * pow(dx, t.p) * pow(dy, t.q)
	}
	return acc
}

// pow returns base^n for n >= 0, with base^0 == 1 for every base.
func pow(base float64, n int) float64 {
	if n == 0 {
		return 1
	}
	return math.Pow(base, float64(n))
}

// Converter maps RD coordinates to (lat, lon).
type Converter func(x, y float64) (lat, lon float64)

// Mode selects which Converter a caller gets.
type Mode string

const (
	ModeReference Mode = "reference"
	ModeKadaster  Mode = "kadaster"
)

// ParseMode accepts "reference" or "kadaster" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeReference, ModeKadaster:
		return m, nil
	default:
		return "", fmt.Errorf("parse rd mode: unknown mode %q", s)
	}
}

// Converter returns the conversion function for the mode.
func (m Mode) Converter() Converter {
	if m == ModeReference {
		return ToWGS84
	}
	return ToWGS84Degrees
}

// Rough WGS84 bounding box of the Netherlands.
const (
	minLat = 50.7
	maxLat = 53.6
	minLon = 3.3
	maxLon = 7.3
)

// InNetherlands is a caller-side sanity check for converted coordinates.
func InNetherlands(lat, lon float64) bool {
	return lat >= minLat && lat <= maxLat && lon >= minLon && lon <= maxLon
}
