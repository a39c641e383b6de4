package spatial

import (
	"fmt"
	"strconv"
	"strings"
)

// Pair is a coordinate in the fixed axis order used on the wire: latitude
// then longitude for EPSG:4326, northing then easting for EPSG:27700.
type Pair struct {
	Lat float64
	Lon float64
}

// Ring is an ordered sequence of pairs describing a closed polygon boundary.
// Closure is not enforced.
type Ring []Pair

const (
	bboxExpect    = `a comma-separated string of 4 numbers, "lat_SW,lon_SW,lat_NE,lon_NE"`
	polygonExpect = `a space-separated string of comma-separated coordinates, "lat1,lon1 lat2,lon2 ... latn,lonn"`
)

// ParseBBox parses a bounding box string into its south-west and north-east
// corners. Whitespace around tokens is immaterial.
func ParseBBox(text string) (sw, ne Pair, err error) {
	tokens := strings.Split(text, ",")
	if len(tokens) != 4 {
		return Pair{}, Pair{}, &MalformedInputError{Input: text, Expect: "expected " + bboxExpect}
	}
	var vals [4]float64
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Pair{}, Pair{}, &MalformedInputError{
				Input:  text,
				Expect: fmt.Sprintf("token %q is not numeric, expected %s", token, bboxExpect),
			}
		}
		vals[i] = v
	}
	return Pair{Lat: vals[0], Lon: vals[1]}, Pair{Lat: vals[2], Lon: vals[3]}, nil
}

// ParsePolygon parses a polygon string into a ring of coordinate pairs.
func ParsePolygon(text string) (Ring, error) {
	vertices := strings.Split(text, " ")
	ring := make(Ring, 0, len(vertices))
	for _, vertex := range vertices {
		parts := strings.Split(vertex, ",")
		if len(parts) != 2 {
			return nil, &MalformedInputError{Input: vertex, Expect: "expected " + polygonExpect}
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, &MalformedInputError{Input: vertex, Expect: "expected " + polygonExpect}
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, &MalformedInputError{Input: vertex, Expect: "expected " + polygonExpect}
		}
		ring = append(ring, Pair{Lat: lat, Lon: lon})
	}
	return ring, nil
}

// String re-encodes the ring in wire order, one space between vertices.
func (r Ring) String() string {
	vertices := make([]string, len(r))
	for i, p := range r {
		vertices[i] = formatFloat(p.Lat) + "," + formatFloat(p.Lon)
	}
	return strings.Join(vertices, " ")
}

// FormatRing converts a GeoJSON ring, whose positions are [lon, lat] (or
// [easting, northing]), into the wire encoding. The axis order is
// deliberately flipped: the Features API expects lat,lon while GeoJSON
// stores x,y.
func FormatRing(coords [][]float64) (string, error) {
	vertices := make([]string, len(coords))
	for i, pos := range coords {
		if len(pos) < 2 {
			return "", &MalformedGeometryError{Reason: "ring position has fewer than 2 values"}
		}
		vertices[i] = formatFloat(pos[1]) + "," + formatFloat(pos[0])
	}
	return strings.Join(vertices, " "), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
