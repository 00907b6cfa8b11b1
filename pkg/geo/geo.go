// Package geo provides the two distance metrics used by the discovery
// engine: an accurate great-circle distance for per-facility distances and
// a coarse planar metric for choosing the nearest bundled city dataset.
package geo

import "math"

const earthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two points in
// meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// PlanarDegrees returns the Euclidean distance between two points on raw
// latitude/longitude degrees. Not geodesic-accurate; only suitable for
// city-selection granularity.
func PlanarDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
