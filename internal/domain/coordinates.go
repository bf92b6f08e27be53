package domain

import "math"

// Earth mean radius in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineKm returns the great-circle distance between two points in
// kilometers at full float64 precision. The formula is symmetric in its
// arguments; rounding happens only at the boundary, see RoundKm.
func HaversineKm(p1, p2 Coordinates) float64 {
	lat1 := toRadians(p1.Lat)
	lat2 := toRadians(p2.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(p2.Lon) - toRadians(p1.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to 3 decimal places for reporting and storage.
func RoundKm(km float64) float64 {
	return math.Round(km*1000) / 1000
}
