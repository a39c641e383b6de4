package spatial

import "strings"

// SRS identifies a supported spatial reference system.
type SRS string

const (
	// EPSG4326 is geographic latitude/longitude (WGS 84).
	EPSG4326 SRS = "EPSG:4326"
	// EPSG27700 is the British National Grid (northing/easting).
	EPSG27700 SRS = "EPSG:27700"
)

// Extent is the rectangular envelope of coordinates an SRS accepts. Bounds
// are exclusive: a value exactly on a bound is out of extent. Lat covers
// latitude or northing, Lon longitude or easting.
type Extent struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Extent returns the valid envelope for the reference system.
func (s SRS) Extent() (Extent, error) {
	switch s {
	case EPSG4326:
		// Approximate mainland-Britain geographic envelope.
		return Extent{MinLat: 49, MaxLat: 61, MinLon: -7, MaxLon: 2}, nil
	case EPSG27700:
		// British National Grid envelope.
		return Extent{MinLat: 0, MaxLat: 1250000, MinLon: 0, MaxLon: 700000}, nil
	default:
		return Extent{}, &UnsupportedSRSError{SRS: string(s)}
	}
}

// Valid reports whether s is a supported reference system.
func (s SRS) Valid() bool {
	_, err := s.Extent()
	return err == nil
}

// Code returns the numeric part of the identifier, e.g. "4326".
func (s SRS) Code() string {
	if _, code, ok := strings.Cut(string(s), ":"); ok {
		return code
	}
	return string(s)
}
