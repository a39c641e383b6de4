package spatial

import "errors"

// ValidateExtent checks every pair against the valid envelope of the
// reference system. The first value on or outside a bound fails the whole
// input; remaining pairs are not inspected.
func ValidateExtent(pairs []Pair, srs SRS) error {
	ext, err := srs.Extent()
	if err != nil {
		return err
	}
	for _, p := range pairs {
		// Phrased as !(inside) so NaN, which fails every comparison,
		// is rejected rather than slipping through.
		if !(p.Lat > ext.MinLat && p.Lat < ext.MaxLat) {
			return &ExtentError{Axis: AxisLatitude, Value: p.Lat, Min: ext.MinLat, Max: ext.MaxLat}
		}
		if !(p.Lon > ext.MinLon && p.Lon < ext.MaxLon) {
			return &ExtentError{Axis: AxisLongitude, Value: p.Lon, Min: ext.MinLon, Max: ext.MaxLon}
		}
	}
	return nil
}

// ValidateBBox parses a bounding box string and bound-checks both corners.
// The reference system is resolved first, so an unsupported SRS fails before
// any parsing. South-west and north-east corners may be interchanged.
func ValidateBBox(text string, srs SRS) (sw, ne Pair, err error) {
	if _, err := srs.Extent(); err != nil {
		return Pair{}, Pair{}, err
	}
	sw, ne, err = ParseBBox(text)
	if err != nil {
		return Pair{}, Pair{}, err
	}
	if err := ValidateExtent([]Pair{sw, ne}, srs); err != nil {
		attachHint(err, bboxHint(srs))
		return Pair{}, Pair{}, err
	}
	return sw, ne, nil
}

func bboxHint(srs SRS) string {
	if srs == EPSG27700 {
		return `Format bbox as a comma-separated string of the form "Northing_SW,Easting_SW,Northing_NE,Easting_NE".`
	}
	return `Format bbox as a comma-separated string of the form "latitude_SW,longitude_SW,latitude_NE,longitude_NE".`
}

const polygonHint = `Format polygon as a space-separated string of comma-separated coordinates of the form "lat1,lon1 lat2,lon2 ... latn,lonn".`

func attachHint(err error, hint string) {
	var extErr *ExtentError
	if errors.As(err, &extErr) {
		extErr.Hint = hint
	}
}
