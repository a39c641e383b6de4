package osclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"

	osclient "github.com/robert-malhotra/go-osdatahub/client"
	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

const testAPIKey = "0123456789abcdef0123456789abcdef"

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...osclient.ClientOption) *osclient.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]osclient.ClientOption{
		osclient.WithBaseURL(server.URL),
		osclient.WithHTTPClient(server.Client()),
	}, opts...)
	client, err := osclient.New(opts...)
	if err != nil {
		t.Fatalf("New client: %v", err)
	}
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode json: %v", err)
	}
}

func minimalFeature(id string) map[string]any {
	return map[string]any{
		"type":       "Feature",
		"id":         id,
		"geometry":   map[string]any{"type": "Point", "coordinates": []float64{-1, 50}},
		"properties": map[string]any{},
	}
}

func featurePage(features ...any) map[string]any {
	return map[string]any{
		"type":           "FeatureCollection",
		"features":       features,
		"numberReturned": len(features),
	}
}

func collect(t *testing.T, seq func(func(*geojson.Feature, error) bool)) []*geojson.Feature {
	t.Helper()
	var out []*geojson.Feature
	seq(func(f *geojson.Feature, err error) bool {
		if err != nil {
			t.Fatalf("iterator error: %v", err)
		}
		out = append(out, f)
		return true
	})
	return out
}

func firstError(seq func(func(*geojson.Feature, error) bool)) error {
	var got error
	seq(func(_ *geojson.Feature, err error) bool {
		got = err
		return err == nil
	})
	return got
}

func TestWithinPagination(t *testing.T) {
	var requests int
	handler := func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		if q.Get("service") != "WFS" || q.Get("version") != "2.0.0" || q.Get("request") != "GetFeature" {
			t.Fatalf("unexpected WFS params: %v", q)
		}
		if q.Get("typeNames") != "Zoomstack_Greenspace" {
			t.Fatalf("typeNames = %q", q.Get("typeNames"))
		}
		if q.Get("outputFormat") != "GEOJSON" {
			t.Fatalf("outputFormat = %q", q.Get("outputFormat"))
		}
		if q.Get("bbox") != "49.5,-6,60,1" {
			t.Fatalf("bbox = %q", q.Get("bbox"))
		}
		if q.Get("srsName") != "EPSG:4326" {
			t.Fatalf("srsName = %q", q.Get("srsName"))
		}
		if q.Get("count") != "2" {
			t.Fatalf("count = %q", q.Get("count"))
		}
		switch q.Get("startIndex") {
		case "0":
			writeJSON(t, w, featurePage(minimalFeature("one"), minimalFeature("two")))
		case "2":
			writeJSON(t, w, featurePage(minimalFeature("three")))
		default:
			t.Fatalf("unexpected startIndex %q", q.Get("startIndex"))
		}
	}

	client := newTestClient(t, handler, osclient.WithPageSize(2))
	seq := client.Features().Within(context.Background(), "Zoomstack_Greenspace", "49.5,-6,60,1")
	features := collect(t, seq)

	if got, want := len(features), 3; got != want {
		t.Fatalf("expected %d features, got %d", want, got)
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests, got %d", requests)
	}
}

func TestIntersectingSendsFilter(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		if !strings.Contains(filter, `srsName="urn:ogc:def:crs:EPSG::4326"`) {
			t.Fatalf("filter missing srsName: %q", filter)
		}
		if !strings.Contains(filter, "<gml:coordinates>49.9,-1.1 50.1,-1.1 50.1,-0.9 49.9,-1.1</gml:coordinates>") {
			t.Fatalf("filter missing coordinates: %q", filter)
		}
		if r.URL.Query().Get("bbox") != "" {
			t.Fatalf("bbox must not be set on intersects queries")
		}
		writeJSON(t, w, featurePage(minimalFeature("one")))
	}

	polygon := geojson.NewFeature(geojson.NewPolygonGeometry([][][]float64{{
		{-1.1, 49.9}, {-1.1, 50.1}, {-0.9, 50.1}, {-1.1, 49.9},
	}}))

	client := newTestClient(t, handler)
	seq := client.Features().Intersecting(context.Background(), "Zoomstack_Greenspace", polygon)
	features := collect(t, seq)
	if len(features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(features))
	}
}

func TestValidationRunsBeforeNetwork(t *testing.T) {
	var requests int
	handler := func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(t, w, featurePage())
	}
	client := newTestClient(t, handler)
	ctx := context.Background()

	t.Run("bbox outside the envelope", func(t *testing.T) {
		err := firstError(client.Features().Within(ctx, "Zoomstack_Greenspace", "48,-6,60,1"))
		var extErr *spatial.ExtentError
		if !errors.As(err, &extErr) {
			t.Fatalf("expected ExtentError, got %v", err)
		}
	})

	t.Run("unknown type name", func(t *testing.T) {
		err := firstError(client.Features().Within(ctx, "Zoomstack_Volcanoes", "49.5,-6,60,1"))
		if err == nil {
			t.Fatal("expected error for unknown type name")
		}
	})

	t.Run("non-polygon geometry", func(t *testing.T) {
		point := geojson.NewFeature(geojson.NewPointGeometry([]float64{-1, 50}))
		err := firstError(client.Features().Intersecting(ctx, "Zoomstack_Greenspace", point))
		var typeErr *spatial.WrongGeometryTypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("expected WrongGeometryTypeError, got %v", err)
		}
	})

	if requests != 0 {
		t.Fatalf("expected no requests, got %d", requests)
	}
}

func TestPremiumGate(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, featurePage(minimalFeature("one")))
	}

	t.Run("premium product rejected by default", func(t *testing.T) {
		client := newTestClient(t, handler)
		_, err := client.Features().GetPage(context.Background(), "Topography_TopographicArea", 0)
		if err == nil {
			t.Fatal("expected premium gating error")
		}
	})

	t.Run("premium product allowed with WithPremium", func(t *testing.T) {
		client := newTestClient(t, handler, osclient.WithPremium(true))
		page, err := client.Features().GetPage(context.Background(), "Topography_TopographicArea", 0)
		if err != nil {
			t.Fatalf("GetPage: %v", err)
		}
		if len(page.Features) != 1 {
			t.Fatalf("expected 1 feature, got %d", len(page.Features))
		}
	})
}

func TestAPIKeyReachesServer(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != testAPIKey {
			t.Fatalf("key = %q", got)
		}
		writeJSON(t, w, featurePage())
	}
	client := newTestClient(t, handler, osclient.WithAPIKey(testAPIKey))
	if _, err := client.Features().GetPage(context.Background(), "Zoomstack_Greenspace", 0); err != nil {
		t.Fatalf("GetPage: %v", err)
	}
}

func TestAPIKeyShapeValidated(t *testing.T) {
	_, err := osclient.New(osclient.WithAPIKey("too-short"))
	if err == nil {
		t.Fatal("expected error for malformed API key")
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"fault":{"faultstring":"Invalid ApiKey","detail":{"errorcode":"oauth.v2.InvalidApiKey"}}}`))
	}
	client := newTestClient(t, handler, osclient.WithRetryPolicy(nil))
	_, err := client.Features().GetPage(context.Background(), "Zoomstack_Greenspace", 0)

	var apiErr *osclient.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d", apiErr.Status)
	}
	if apiErr.Code != "oauth.v2.InvalidApiKey" || apiErr.Message != "Invalid ApiKey" {
		t.Fatalf("unexpected payload: %+v", apiErr)
	}
	if apiErr.Temporary() {
		t.Fatal("401 must not be retryable")
	}
}

func TestReshapedCollection(t *testing.T) {
	ring := [][]float64{{-1.1, 49.9}, {-1.1, 50.1}, {-0.9, 50.1}, {-1.1, 49.9}}
	fc := &osclient.FeatureCollection{
		Type: "FeatureCollection",
		Features: []*geojson.Feature{
			geojson.NewFeature(geojson.NewLineStringGeometry(ring)),
			geojson.NewFeature(geojson.NewLineStringGeometry(ring)),
		},
	}
	out, err := fc.Reshaped(geojson.GeometryPolygon)
	if err != nil {
		t.Fatalf("Reshaped: %v", err)
	}
	if len(out.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(out.Features))
	}
	for _, f := range out.Features {
		if f.Geometry.Type != geojson.GeometryPolygon {
			t.Fatalf("geometry type = %q", f.Geometry.Type)
		}
	}
}
