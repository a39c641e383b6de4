// Package spatial validates geospatial query parameters for the OS Data Hub
// Features API and builds OGC filter fragments from GeoJSON polygons.
//
// Coordinates travel in two textual encodings: a bounding box is four
// comma-separated numbers ("lat_SW,lon_SW,lat_NE,lon_NE"), and a polygon is a
// space-separated list of comma-separated pairs ("lat1,lon1 lat2,lon2 ...").
// Both encodings put latitude (or northing) first, which is the reverse of
// GeoJSON's native lon,lat position order; FormatRing performs that flip when
// flattening GeoJSON rings.
//
// Every value is bound-checked against the envelope of its spatial reference
// system before a request is built:
//
//	sw, ne, err := spatial.ValidateBBox("49.5,-6,60,1", spatial.EPSG4326)
//	if err != nil {
//	    // reject the request, nothing was sent
//	}
//
// The envelopes cover mainland Britain only and exist to catch obviously
// wrong inputs (swapped axes, the wrong reference system, queries outside the
// country), not to act as a precise spatial authority.
package spatial
