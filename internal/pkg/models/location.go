package models

// Location is a point on the globe in decimal degrees
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BoundingBox is a latitude/longitude rectangle in degrees.
// Bounds may fall outside [-90,90] and [-180,180] near the poles and the antimeridian.
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
}

// LongitudeRange is a closed interval of longitudes within [-180, 180]
type LongitudeRange struct {
	Min float64
	Max float64
}

// LongitudeRanges folds the box's longitude span back into [-180, 180].
// A span crossing the antimeridian yields two ranges. It yields nil, meaning
// every longitude is inside the box, when the span is 360 degrees or more or
// when the latitude bounds reach past a pole: points across the pole lie at
// any longitude.
func (b BoundingBox) LongitudeRanges() []LongitudeRange {
	if b.LonMax-b.LonMin >= 360 || b.LatMax > 90 || b.LatMin < -90 {
		return nil
	}

	lo := normalizeLongitude(b.LonMin)
	hi := normalizeLongitude(b.LonMax)
	if lo <= hi {
		return []LongitudeRange{{Min: lo, Max: hi}}
	}
	return []LongitudeRange{
		{Min: lo, Max: 180},
		{Min: -180, Max: hi},
	}
}

// ClampedLatitudes returns the latitude bounds limited to [-90, 90]
func (b BoundingBox) ClampedLatitudes() (float64, float64) {
	latMin, latMax := b.LatMin, b.LatMax
	if latMin < -90 {
		latMin = -90
	}
	if latMax > 90 {
		latMax = 90
	}
	return latMin, latMax
}

func normalizeLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}
