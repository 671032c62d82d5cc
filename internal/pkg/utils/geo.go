package utils

import "math"

const earthRadiusKm = 6371.0

// KmPerDegree is the flat-earth approximation used to translate cluster radii
// into degree space. It is only valid for small mid-latitude regions; the
// Swiss latitude band (~45.8-47.8 N) is narrow enough for it to hold.
const KmPerDegree = 111.0

// Swiss bounding box. Records outside it are rejected at ingestion.
const (
	SwissMinLat = 45.0
	SwissMaxLat = 48.0
	SwissMinLon = 5.0
	SwissMaxLon = 11.0
)

// HaversineDistance returns the great-circle distance between two points in km.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// KmToDegrees converts a distance in kilometers to angular degrees using the
// 111 km/degree approximation.
func KmToDegrees(km float64) float64 {
	return km / KmPerDegree
}

// ValidateCoordinates reports whether lat/lon fall inside the Swiss bounding box.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= SwissMinLat && lat <= SwissMaxLat &&
		lon >= SwissMinLon && lon <= SwissMaxLon
}
