package spatial

import (
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// GeometryType returns the feature's geometry type.
func GeometryType(f *geojson.Feature) (string, error) {
	if f == nil || f.Geometry == nil || f.Geometry.Type == "" {
		return "", &MalformedGeometryError{Reason: "missing geometry type"}
	}
	return string(f.Geometry.Type), nil
}

// RequirePolygon asserts the feature carries Polygon geometry. The type is
// compared case-insensitively.
func RequirePolygon(f *geojson.Feature) error {
	typ, err := GeometryType(f)
	if err != nil {
		return err
	}
	if !strings.EqualFold(typ, string(geojson.GeometryPolygon)) {
		return &WrongGeometryTypeError{Got: typ, Want: string(geojson.GeometryPolygon)}
	}
	return nil
}

// OuterRing returns the boundary ring of the feature's geometry. For
// polygons that is the first ring; inner holes are ignored. A LineString's
// coordinates are treated as a ring directly, since some upstream services
// encode closed boundaries that way.
func OuterRing(f *geojson.Feature) ([][]float64, error) {
	if f == nil || f.Geometry == nil {
		return nil, &MalformedGeometryError{Reason: "missing geometry"}
	}
	g := f.Geometry
	switch g.Type {
	case geojson.GeometryPolygon:
		if len(g.Polygon) == 0 {
			return nil, &MalformedGeometryError{Reason: "polygon has no rings"}
		}
		return g.Polygon[0], nil
	case geojson.GeometryMultiLineString:
		if len(g.MultiLineString) == 0 {
			return nil, &MalformedGeometryError{Reason: "multilinestring has no members"}
		}
		return g.MultiLineString[0], nil
	case geojson.GeometryLineString:
		return g.LineString, nil
	default:
		return nil, &WrongGeometryTypeError{Got: string(g.Type), Want: string(geojson.GeometryPolygon)}
	}
}

// Reshape rebuilds the feature's boundary ring as geometry of the target
// type, re-attaching the original properties. The source feature is not
// modified.
func Reshape(f *geojson.Feature, target geojson.GeometryType) (*geojson.Feature, error) {
	ring, err := OuterRing(f)
	if err != nil {
		return nil, err
	}
	var geom *geojson.Geometry
	switch target {
	case geojson.GeometryPolygon:
		geom = geojson.NewPolygonGeometry([][][]float64{ring})
	case geojson.GeometryLineString:
		geom = geojson.NewLineStringGeometry(ring)
	default:
		return nil, &WrongGeometryTypeError{Got: string(target), Want: "Polygon or LineString"}
	}
	out := geojson.NewFeature(geom)
	out.Properties = f.Properties
	return out, nil
}

// ReshapeAll applies Reshape to every feature in order. The output holds one
// feature per input; any failure aborts the whole conversion.
func ReshapeAll(features []*geojson.Feature, target geojson.GeometryType) ([]*geojson.Feature, error) {
	out := make([]*geojson.Feature, 0, len(features))
	for _, f := range features {
		reshaped, err := Reshape(f, target)
		if err != nil {
			return nil, err
		}
		out = append(out, reshaped)
	}
	return out, nil
}

// PolygonString flattens the feature's outer ring into the wire encoding
// used by the Features API.
func PolygonString(f *geojson.Feature) (string, error) {
	ring, err := OuterRing(f)
	if err != nil {
		return "", err
	}
	return FormatRing(ring)
}
