package osclient

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

// Link is a WFS response link.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// FeatureCollection is one page of a WFS GetFeature response.
type FeatureCollection struct {
	Type           string             `json:"type"`
	Features       []*geojson.Feature `json:"features"`
	NumberReturned int                `json:"numberReturned,omitempty"`
	TimeStamp      string             `json:"timeStamp,omitempty"`
	BoundingBox    []float64          `json:"bbox,omitempty"`
	Links          []Link             `json:"links,omitempty"`
}

// Reshaped returns a copy of the collection whose features are rebuilt with
// the target geometry type, properties preserved. Useful for normalizing
// responses that encode closed boundaries as LineStrings.
func (fc *FeatureCollection) Reshaped(target geojson.GeometryType) (*FeatureCollection, error) {
	features, err := spatial.ReshapeAll(fc.Features, target)
	if err != nil {
		return nil, err
	}
	return &FeatureCollection{
		Type:           fc.Type,
		Features:       features,
		NumberReturned: fc.NumberReturned,
		TimeStamp:      fc.TimeStamp,
		BoundingBox:    fc.BoundingBox,
		Links:          fc.Links,
	}, nil
}
