package services

import (
	"math"

	"main/model"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// HaversineDistance returns the great-circle distance in meters between two
// coordinates on a spherical Earth approximation.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// EvaluateGeofences returns every zone whose boundary contains the position.
// The boundary is inclusive: distance exactly equal to the radius triggers.
// Pure function, no deduplication against prior triggers.
func EvaluateGeofences(lat, lng float64, zones []*model.HighRiskZone) []*model.HighRiskZone {
	var triggered []*model.HighRiskZone
	for _, zone := range zones {
		distance := HaversineDistance(lat, lng, zone.CenterLat, zone.CenterLng)
		if distance <= zone.RadiusMeters {
			triggered = append(triggered, zone)
		}
	}
	return triggered
}
