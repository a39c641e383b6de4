package osclient

import (
	"context"
	"net/url"
	"strconv"

	geojson "github.com/paulmach/go.geojson"
	"iter"

	"github.com/robert-malhotra/go-osdatahub/pkg/products"
	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

// FeatureService executes WFS GetFeature queries.
type FeatureService struct {
	client *Client
}

// Within streams every feature of the type whose geometry falls inside the
// bounding box. The bbox string and type name are validated against the
// client's reference system and the product catalog before any request is
// made.
func (s *FeatureService) Within(ctx context.Context, typeName, bbox string, opts ...RequestOption) iter.Seq2[*geojson.Feature, error] {
	c := s.client
	params := products.RequestParams{
		Service:      products.WFS,
		TypeName:     typeName,
		AllowPremium: c.allowPremium,
		SRS:          c.srs,
		OutputFormat: "geojson",
		BBox:         bbox,
	}
	if err := params.Validate(); err != nil {
		return failSeq(err)
	}

	query := s.baseQuery(typeName)
	query.Set("srsName", string(c.srs))
	query.Set("bbox", bbox)
	return s.stream(ctx, query, opts)
}

// Intersecting streams every feature of the type whose geometry intersects
// the polygon feature. The polygon is flattened to the wire encoding,
// bound-checked, and rendered into an OGC Intersects filter.
func (s *FeatureService) Intersecting(ctx context.Context, typeName string, polygon *geojson.Feature, opts ...RequestOption) iter.Seq2[*geojson.Feature, error] {
	c := s.client
	if err := spatial.RequirePolygon(polygon); err != nil {
		return failSeq(err)
	}
	text, err := spatial.PolygonString(polygon)
	if err != nil {
		return failSeq(err)
	}
	params := products.RequestParams{
		Service:      products.WFS,
		TypeName:     typeName,
		AllowPremium: c.allowPremium,
		SRS:          c.srs,
		OutputFormat: "geojson",
		Polygon:      text,
	}
	if err := params.Validate(); err != nil {
		return failSeq(err)
	}

	query := s.baseQuery(typeName)
	query.Set("srsName", string(c.srs))
	query.Set("filter", spatial.IntersectsFilter(text, c.srs))
	return s.stream(ctx, query, opts)
}

// GetPage performs a single GetFeature request for one page of features of
// the type, starting at the given feature index.
func (s *FeatureService) GetPage(ctx context.Context, typeName string, startIndex int, opts ...RequestOption) (*FeatureCollection, error) {
	if _, err := products.ValidateTypeName(typeName, products.WFS, s.client.allowPremium); err != nil {
		return nil, err
	}
	query := s.baseQuery(typeName)
	query.Set("srsName", string(s.client.srs))
	query.Set("count", strconv.Itoa(s.client.pageSize))
	query.Set("startIndex", strconv.Itoa(startIndex))
	return s.fetchPage(ctx, query, opts)
}

func (s *FeatureService) baseQuery(typeName string) url.Values {
	query := make(url.Values)
	query.Set("service", "WFS")
	query.Set("version", "2.0.0")
	query.Set("request", "GetFeature")
	query.Set("typeNames", typeName)
	query.Set("outputFormat", "GEOJSON")
	return query
}

// stream pages through GetFeature responses with startIndex until a short
// page signals the end of the result set.
func (s *FeatureService) stream(ctx context.Context, base url.Values, opts []RequestOption) iter.Seq2[*geojson.Feature, error] {
	c := s.client
	return func(yield func(*geojson.Feature, error) bool) {
		start := 0
		for {
			query := cloneValues(base)
			query.Set("count", strconv.Itoa(c.pageSize))
			query.Set("startIndex", strconv.Itoa(start))
			page, err := s.fetchPage(ctx, query, opts)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, feature := range page.Features {
				if feature == nil {
					continue
				}
				if !yield(feature, nil) {
					return
				}
			}
			if len(page.Features) < c.pageSize {
				return
			}
			start += c.pageSize
		}
	}
}

func (s *FeatureService) fetchPage(ctx context.Context, query url.Values, opts []RequestOption) (*FeatureCollection, error) {
	var page FeatureCollection
	if err := s.client.doJSON(ctx, query, &page, opts); err != nil {
		return nil, err
	}
	return &page, nil
}

func failSeq(err error) iter.Seq2[*geojson.Feature, error] {
	return func(yield func(*geojson.Feature, error) bool) {
		yield(nil, err)
	}
}
