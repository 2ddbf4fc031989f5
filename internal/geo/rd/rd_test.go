package rd

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWGS84ReferencePoint(t *testing.T) {
	lat, lon := ToWGS84(refX, refY)

	// The whole accumulator (reference value included) is divided by 3600.
	phi0, lambda0 := float64(refPhi), float64(refLambda)
	assert.Equal(t, phi0/3600, lat)
	assert.Equal(t, lambda0/3600, lon)
	assert.InDelta(t, 0.0144875484, lat, 1e-10)
	assert.InDelta(t, 0.0014964462, lon, 1e-10)
}

func TestToWGS84DegreesReferencePoint(t *testing.T) {
	lat, lon := ToWGS84Degrees(refX, refY)

	assert.Equal(t, float64(refPhi), lat)
	assert.Equal(t, float64(refLambda), lon)
}

func TestToWGS84ControlPoint(t *testing.T) {
	lat, lon := ToWGS84(122700, 487525)
	assert.InDelta(t, 0.23396241401062273, lat, 1e-12)
	assert.InDelta(t, -0.47282593660844635, lon, 1e-12)
}

func TestToWGS84DegreesControlPoints(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		lat     float64
		lon     float64
		nearLat float64
		nearLon float64
	}{
		{"amsterdam", 122700, 487525, 52.37464926556618, 4.912883827222109, 52.3731, 4.8922},
		{"groningen", 233883, 582065, 53.21938168595432, 6.568198527236726, 53.2194, 6.5665},
		{"vlissingen", 31000, 391000, 51.49436166391659, 3.6014997397887116, 51.4427, 3.5736},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := ToWGS84Degrees(tt.x, tt.y)
			assert.InDelta(t, tt.lat, lat, 1e-9)
			assert.InDelta(t, tt.lon, lon, 1e-9)

			// Same city as the published WGS84 reference.
			assert.InDelta(t, tt.nearLat, lat, 0.06)
			assert.InDelta(t, tt.nearLon, lon, 0.06)
			assert.True(t, InNetherlands(lat, lon))
		})
	}
}

func TestSeriesShareAccumulateThenDivide(t *testing.T) {
	points := [][2]float64{{122700, 487525}, {233883, 582065}, {31000, 391000}, {200000, 350000}}

	for _, p := range points {
		latRef, lonRef := ToWGS84(p[0], p[1])
		latDeg, lonDeg := ToWGS84Degrees(p[0], p[1])

		// reference*3600 - ref == correction in arc-seconds == (degrees - ref)*3600
		assert.InDelta(t, (latDeg-refPhi)*3600, latRef*3600-refPhi, 1e-6)
		assert.InDelta(t, (lonDeg-refLambda)*3600, lonRef*3600-refLambda, 1e-6)

		// Dividing only the series would leave the reference value undivided.
		assert.NotEqual(t, refPhi+(latRef*3600-refPhi)/3600, latRef)
	}
}

func TestLongitudeMonotonicInX(t *testing.T) {
	for _, conv := range []Converter{ToWGS84, ToWGS84Degrees} {
		for _, y := range []float64{350000, 463000, 600000} {
			_, prev := conv(100000, y)
			for x := 100100.0; x <= 102000; x += 100 {
				_, lon := conv(x, y)
				require.Greater(t, lon, prev, "x=%v y=%v", x, y)
				prev = lon
			}
		}
	}
}

func TestLatitudeMonotonicInY(t *testing.T) {
	prev, _ := ToWGS84Degrees(155000, 400000)
	for y := 400100.0; y <= 402000; y += 100 {
		lat, _ := ToWGS84Degrees(155000, y)
		require.Greater(t, lat, prev, "y=%v", y)
		prev = lat
	}
}

func TestExponentZeroIsOne(t *testing.T) {
	assert.Equal(t, 1.0, pow(0, 0))
	assert.Equal(t, 1.0, pow(math.Inf(1), 0))
	assert.Equal(t, 1.0, pow(math.NaN(), 0))
	assert.Equal(t, 8.0, pow(2, 3))

	series := []term{{0, 0, 2.5}}
	assert.Equal(t, 2.5, accumulate(0, series, 0, 0))
	assert.Equal(t, 12.5, accumulate(10, series, 0, 0))
}

func TestNonFiniteInputPropagates(t *testing.T) {
	lat, lon := ToWGS84(math.NaN(), 463000)
	assert.True(t, math.IsNaN(lat))
	assert.True(t, math.IsNaN(lon))

	lat, lon = ToWGS84Degrees(math.Inf(1), 463000)
	assert.False(t, isFinite(lat) && isFinite(lon))
}

func TestDeterministicAcrossGoroutines(t *testing.T) {
	wantLat, wantLon := ToWGS84(122700, 487525)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lat, lon := ToWGS84(122700, 487525)
			if math.Float64bits(lat) != math.Float64bits(wantLat) || math.Float64bits(lon) != math.Float64bits(wantLon) {
				errs <- "result differs between calls"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Kadaster ")
	require.NoError(t, err)
	assert.Equal(t, ModeKadaster, m)

	m, err = ParseMode("reference")
	require.NoError(t, err)
	assert.Equal(t, ModeReference, m)

	_, err = ParseMode("bessel")
	assert.Error(t, err)

	lat, _ := ModeReference.Converter()(refX, refY)
	assert.Less(t, lat, 1.0)
	lat, _ = ModeKadaster.Converter()(refX, refY)
	assert.Greater(t, lat, 52.0)
}

func TestInNetherlands(t *testing.T) {
	assert.True(t, InNetherlands(52.1, 5.1))
	assert.False(t, InNetherlands(0.0145, 0.0015))
	assert.False(t, InNetherlands(48.85, 2.35))
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
