package utils

import (
	"math"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used for all distance math
const EarthRadiusKm = 6371.0

// poleEpsilon is the cos(lat) threshold under which the longitude span is opened fully
const poleEpsilon = 1e-6

// Haversine returns the great-circle distance in kilometers between two points
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	dLat := lat2Rad - lat1Rad
	dLon := degreesToRadians(lon2) - degreesToRadians(lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// CalculateDistance returns the haversine distance in kilometers between two locations
func CalculateDistance(from, to models.Location) float64 {
	return Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// ComputeBoundingBox returns a lat/lon rectangle containing every point within
// radiusKm of (lat, lon). Callers are expected to pass lat in [-90,90],
// lon in [-180,180] and a positive radius.
//
// Near the poles cos(lat) approaches zero and the longitude span is opened to
// the full circle instead of dividing by it.
func ComputeBoundingBox(lat, lon, radiusKm float64) models.BoundingBox {
	deltaLat := (radiusKm / EarthRadiusKm) * (180.0 / math.Pi)

	var deltaLon float64
	cosLat := math.Cos(degreesToRadians(lat))
	if math.Abs(cosLat) < poleEpsilon {
		deltaLon = 180.0
	} else {
		deltaLon = (radiusKm / (EarthRadiusKm * cosLat)) * (180.0 / math.Pi)
	}

	return models.BoundingBox{
		LatMin: lat - deltaLat,
		LatMax: lat + deltaLat,
		LonMin: lon - deltaLon,
		LonMax: lon + deltaLon,
	}
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Location {
	lat, lng := geohash.Decode(hash)
	return models.Location{Latitude: lat, Longitude: lng}
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
