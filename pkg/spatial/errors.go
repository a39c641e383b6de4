package spatial

import "fmt"

// Axis identifies which coordinate axis violated a bound.
type Axis string

const (
	// AxisLatitude covers latitude under EPSG:4326 and northing under EPSG:27700.
	AxisLatitude Axis = "Latitude"
	// AxisLongitude covers longitude under EPSG:4326 and easting under EPSG:27700.
	AxisLongitude Axis = "Longitude"
)

// UnsupportedSRSError is returned for a spatial reference system outside the
// supported set.
type UnsupportedSRSError struct {
	SRS string
}

func (e *UnsupportedSRSError) Error() string {
	return fmt.Sprintf("spatial: %s is not a valid Spatial Reference System (valid systems: %s, %s)",
		e.SRS, EPSG4326, EPSG27700)
}

// MalformedInputError is returned when a bbox or polygon string does not
// match the expected wire encoding.
type MalformedInputError struct {
	Input  string
	Expect string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("spatial: malformed coordinate string %q: %s", e.Input, e.Expect)
}

// MalformedGeometryError is returned when a feature does not conform to the
// expected GeoJSON shape.
type MalformedGeometryError struct {
	Reason string
}

func (e *MalformedGeometryError) Error() string {
	return "spatial: feature is not in standard GeoJSON format: " + e.Reason
}

// WrongGeometryTypeError is returned when a feature's geometry type does not
// match what an operation requires.
type WrongGeometryTypeError struct {
	Got  string
	Want string
}

func (e *WrongGeometryTypeError) Error() string {
	return fmt.Sprintf("spatial: geometry type is %q, want %q", e.Got, e.Want)
}

// ExtentError reports a coordinate on or outside the valid envelope of a
// spatial reference system.
type ExtentError struct {
	Axis  Axis
	Value float64
	Min   float64
	Max   float64
	Hint  string
}

func (e *ExtentError) Error() string {
	msg := fmt.Sprintf("spatial: British %s values must be between %v and %v, got %v",
		e.Axis, e.Min, e.Max, e.Value)
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}
