package utils

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

var (
	paris  = models.Location{Latitude: 48.8566, Longitude: 2.3522}
	london = models.Location{Latitude: 51.5074, Longitude: -0.1278}
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name      string
		from      models.Location
		to        models.Location
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			from:      paris,
			to:        paris,
			expected:  0.0,
			tolerance: 0,
		},
		{
			name:      "Paris to London",
			from:      paris,
			to:        london,
			expected:  344.0,
			tolerance: 4.0,
		},
		{
			name:      "Cross equator",
			from:      models.Location{Latitude: -1.0, Longitude: 100.0},
			to:        models.Location{Latitude: 1.0, Longitude: 100.0},
			expected:  222.4,
			tolerance: 1.0,
		},
		{
			name:      "Cross 180th meridian",
			from:      models.Location{Latitude: 0.0, Longitude: 179.0},
			to:        models.Location{Latitude: 0.0, Longitude: -179.0},
			expected:  222.4,
			tolerance: 1.0,
		},
		{
			name:      "Antipodal points",
			from:      models.Location{Latitude: 0.0, Longitude: 0.0},
			to:        models.Location{Latitude: 0.0, Longitude: 180.0},
			expected:  math.Pi * EarthRadiusKm,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDistance(tt.from, tt.to)

			assert.GreaterOrEqual(t, result, 0.0)
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestHaversine_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180

		assert.Equal(t, 0.0, Haversine(lat, lon, lat, lon))
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		lat1, lon1 := rng.Float64()*180-90, rng.Float64()*360-180
		lat2, lon2 := rng.Float64()*180-90, rng.Float64()*360-180

		assert.InDelta(t, Haversine(lat1, lon1, lat2, lon2), Haversine(lat2, lon2, lat1, lon1), 1e-9)
	}
}

func TestHaversine_ParisLondonWithinKnownRange(t *testing.T) {
	d := Haversine(paris.Latitude, paris.Longitude, london.Latitude, london.Longitude)

	assert.Greater(t, d, 340.0)
	assert.Less(t, d, 350.0)
}

func TestHaversine_MonotonicWithSeparation(t *testing.T) {
	prev := 0.0
	for step := 1; step <= 180; step++ {
		d := Haversine(0, 0, 0, float64(step))
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestComputeBoundingBox_ContainsCenter(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		lat := rng.Float64()*178 - 89
		lon := rng.Float64()*360 - 180
		radius := rng.Float64()*2000 + 0.1

		bbox := ComputeBoundingBox(lat, lon, radius)

		assert.Less(t, bbox.LatMin, lat)
		assert.Greater(t, bbox.LatMax, lat)
		assert.Less(t, bbox.LonMin, lon)
		assert.Greater(t, bbox.LonMax, lon)
	}
}

func TestComputeBoundingBox_Basic(t *testing.T) {
	bbox := ComputeBoundingBox(paris.Latitude, paris.Longitude, 10)

	deltaLat := 10 / EarthRadiusKm * 180 / math.Pi
	assert.InDelta(t, paris.Latitude-deltaLat, bbox.LatMin, 1e-12)
	assert.InDelta(t, paris.Latitude+deltaLat, bbox.LatMax, 1e-12)
	// longitude span widens with latitude
	assert.Greater(t, bbox.LonMax-bbox.LonMin, bbox.LatMax-bbox.LatMin)
}

func TestComputeBoundingBox_PoleFallback(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		bbox := ComputeBoundingBox(lat, 0, 10)

		assert.InDelta(t, 360.0, bbox.LonMax-bbox.LonMin, 1e-9)
		assert.False(t, math.IsInf(bbox.LonMax, 0))
		assert.False(t, math.IsNaN(bbox.LonMin))
	}
}

func TestComputeBoundingBox_ContainsDisc(t *testing.T) {
	center := models.Location{Latitude: 60.0, Longitude: 10.0}
	radius := 250.0
	bbox := ComputeBoundingBox(center.Latitude, center.Longitude, radius)

	// walk points on the circle and check they all fall in the box
	for bearing := 0.0; bearing < 360; bearing += 5 {
		p := destination(center, bearing, radius*0.999)
		assert.GreaterOrEqual(t, p.Latitude, bbox.LatMin)
		assert.LessOrEqual(t, p.Latitude, bbox.LatMax)
		assert.GreaterOrEqual(t, p.Longitude, bbox.LonMin)
		assert.LessOrEqual(t, p.Longitude, bbox.LonMax)
	}
}

func TestComputeBoundingBox_AcrossPoleKeepsCandidate(t *testing.T) {
	// Arrange
	center := models.Location{Latitude: 89, Longitude: 0}
	candidate := models.Location{Latitude: 89.5, Longitude: 180}
	radius := 200.0

	// Act
	bbox := ComputeBoundingBox(center.Latitude, center.Longitude, radius)
	latMin, latMax := bbox.ClampedLatitudes()
	ranges := bbox.LongitudeRanges()

	// Assert
	assert.Less(t, CalculateDistance(center, candidate), radius)
	assert.GreaterOrEqual(t, candidate.Latitude, latMin)
	assert.LessOrEqual(t, candidate.Latitude, latMax)
	assert.Nil(t, ranges)
}

func TestEncodeLocation_RoundTripsWithinCell(t *testing.T) {
	hash := EncodeLocation(paris, 7)
	assert.Len(t, hash, 7)
	assert.True(t, strings.HasPrefix(hash, "u09"))

	center := DecodeGeohash(hash)
	assert.Less(t, CalculateDistance(paris, center), 0.2)
}

// destination returns the point reached from start after distanceKm on the given bearing
func destination(start models.Location, bearingDeg, distanceKm float64) models.Location {
	lat1 := degreesToRadians(start.Latitude)
	lon1 := degreesToRadians(start.Longitude)
	brng := degreesToRadians(bearingDeg)
	d := distanceKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(math.Sin(brng)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return models.Location{Latitude: lat2 * 180 / math.Pi, Longitude: lon2 * 180 / math.Pi}
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Haversine(paris.Latitude, paris.Longitude, london.Latitude, london.Longitude)
	}
}
