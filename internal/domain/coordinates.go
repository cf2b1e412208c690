package domain

// Coordinate bounds in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidLatitude reports whether lat is a usable decimal-degree latitude.
// NaN is not.
func ValidLatitude(lat float64) bool {
	return lat >= MinLatitude && lat <= MaxLatitude
}

// ValidLongitude reports whether lon is a usable decimal-degree longitude.
// NaN is not.
func ValidLongitude(lon float64) bool {
	return lon >= MinLongitude && lon <= MaxLongitude
}
