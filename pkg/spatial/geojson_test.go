package spatial

import (
	"errors"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polygonFeature(ring [][]float64) *geojson.Feature {
	return geojson.NewFeature(geojson.NewPolygonGeometry([][][]float64{ring}))
}

func lineStringFeature(coords [][]float64) *geojson.Feature {
	return geojson.NewFeature(geojson.NewLineStringGeometry(coords))
}

var squareRing = [][]float64{{-1.1, 49.9}, {-1.1, 50.1}, {-0.9, 50.1}, {-0.9, 49.9}, {-1.1, 49.9}}

func TestGeometryType(t *testing.T) {
	t.Run("reads the geometry type", func(t *testing.T) {
		typ, err := GeometryType(polygonFeature(squareRing))
		require.NoError(t, err)
		assert.Equal(t, "Polygon", typ)
	})

	t.Run("nil feature is malformed", func(t *testing.T) {
		_, err := GeometryType(nil)
		var geomErr *MalformedGeometryError
		require.True(t, errors.As(err, &geomErr))
	})

	t.Run("missing geometry is malformed", func(t *testing.T) {
		_, err := GeometryType(&geojson.Feature{Type: "Feature"})
		var geomErr *MalformedGeometryError
		require.True(t, errors.As(err, &geomErr))
	})
}

func TestRequirePolygon(t *testing.T) {
	t.Run("polygon passes", func(t *testing.T) {
		require.NoError(t, RequirePolygon(polygonFeature(squareRing)))
	})

	t.Run("type comparison is case-insensitive", func(t *testing.T) {
		f := polygonFeature(squareRing)
		f.Geometry.Type = geojson.GeometryType("polygon")
		require.NoError(t, RequirePolygon(f))
	})

	t.Run("linestring is rejected", func(t *testing.T) {
		err := RequirePolygon(lineStringFeature(squareRing))
		var typeErr *WrongGeometryTypeError
		require.True(t, errors.As(err, &typeErr))
		assert.Equal(t, "LineString", typeErr.Got)
		assert.Equal(t, "Polygon", typeErr.Want)
	})
}

func TestOuterRing(t *testing.T) {
	t.Run("first ring of a polygon, holes ignored", func(t *testing.T) {
		hole := [][]float64{{-1.05, 49.95}, {-1.05, 50.05}, {-0.95, 50.05}, {-1.05, 49.95}}
		f := geojson.NewFeature(geojson.NewPolygonGeometry([][][]float64{squareRing, hole}))
		ring, err := OuterRing(f)
		require.NoError(t, err)
		assert.Equal(t, squareRing, ring)
	})

	t.Run("linestring coordinates are the ring", func(t *testing.T) {
		ring, err := OuterRing(lineStringFeature(squareRing))
		require.NoError(t, err)
		assert.Equal(t, squareRing, ring)
	})

	t.Run("empty polygon is malformed", func(t *testing.T) {
		f := geojson.NewFeature(geojson.NewPolygonGeometry(nil))
		_, err := OuterRing(f)
		var geomErr *MalformedGeometryError
		require.True(t, errors.As(err, &geomErr))
	})

	t.Run("point geometry is the wrong type", func(t *testing.T) {
		f := geojson.NewFeature(geojson.NewPointGeometry([]float64{-1, 50}))
		_, err := OuterRing(f)
		var typeErr *WrongGeometryTypeError
		require.True(t, errors.As(err, &typeErr))
	})
}

func TestReshape(t *testing.T) {
	t.Run("linestring becomes polygon with properties kept", func(t *testing.T) {
		f := lineStringFeature(squareRing)
		f.Properties = map[string]interface{}{"name": "solent", "count": 3}

		out, err := Reshape(f, geojson.GeometryPolygon)
		require.NoError(t, err)
		assert.Equal(t, geojson.GeometryPolygon, out.Geometry.Type)
		assert.Equal(t, squareRing, out.Geometry.Polygon[0])
		assert.Equal(t, f.Properties, out.Properties)
	})

	t.Run("polygon becomes linestring", func(t *testing.T) {
		out, err := Reshape(polygonFeature(squareRing), geojson.GeometryLineString)
		require.NoError(t, err)
		assert.Equal(t, geojson.GeometryLineString, out.Geometry.Type)
		assert.Equal(t, squareRing, out.Geometry.LineString)
	})

	t.Run("unsupported target type", func(t *testing.T) {
		_, err := Reshape(polygonFeature(squareRing), geojson.GeometryPoint)
		var typeErr *WrongGeometryTypeError
		require.True(t, errors.As(err, &typeErr))
	})
}

func TestReshapeAll(t *testing.T) {
	features := make([]*geojson.Feature, 3)
	for i := range features {
		f := lineStringFeature(squareRing)
		f.Properties = map[string]interface{}{"index": i}
		features[i] = f
	}

	out, err := ReshapeAll(features, geojson.GeometryPolygon)
	require.NoError(t, err)
	require.Len(t, out, len(features))
	for i, f := range out {
		assert.Equal(t, geojson.GeometryPolygon, f.Geometry.Type)
		assert.Equal(t, features[i].Properties, f.Properties)
	}
}

func TestPolygonString(t *testing.T) {
	text, err := PolygonString(polygonFeature(squareRing))
	require.NoError(t, err)
	assert.Equal(t, "49.9,-1.1 50.1,-1.1 50.1,-0.9 49.9,-0.9 49.9,-1.1", text)
}
