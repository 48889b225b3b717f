// Package geo holds the great-circle math shared by the route scorer and
// the radius filter. Both must use the exact same formula: the inclusive
// radius boundary only holds if no second distance implementation exists.
package geo

import "math"

const EarthRadiusKm = 6371.0

// DistanceKm returns the Haversine great-circle distance in kilometers.
// Symmetric, zero for identical points, never negative. Callers validate
// coordinate ranges upstream.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Midpoint is the arithmetic mean of each coordinate, not a geodesic
// midpoint. Good enough for short-to-medium routes; breaks near the
// antimeridian. Known limitation, kept on purpose.
func Midpoint(lat1, lng1, lat2, lng2 float64) (float64, float64) {
	return (lat1 + lat2) / 2, (lng1 + lng2) / 2
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
