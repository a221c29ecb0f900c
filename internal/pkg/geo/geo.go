package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Zone is a circular authorized area around a center point.
type Zone struct {
	Center       Point
	RadiusMeters float64
}

// DistanceMeters menghitung jarak antara dua titik koordinat dalam Meter.
func DistanceMeters(a, b Point) float64 {
	// Konversi ke Radian
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1Rad := a.Latitude * (math.Pi / 180.0)
	lat2Rad := b.Latitude * (math.Pi / 180.0)

	// Rumus Haversine. Cos*Cos dulu supaya hasilnya identik saat argumen
	// ditukar.
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Contains reports whether a point at the given distance from the zone
// center is inside the zone. The boundary itself counts as inside.
func (z Zone) Contains(distanceMeters float64) bool {
	return distanceMeters <= z.RadiusMeters
}

// DistanceTo returns the distance in meters from the zone center to p.
func (z Zone) DistanceTo(p Point) float64 {
	return DistanceMeters(z.Center, p)
}
