// Package products holds the static catalogs of feature types and layers the
// OS Data Hub APIs serve, and the request-parameter checks a query must pass
// before it is sent.
package products

import (
	"fmt"
	"strings"
)

// Service identifies an OS Data Hub API family.
type Service int

const (
	// WFS is the Features API.
	WFS Service = iota
	// WMTS is the Maps API tile service.
	WMTS
	// VTS is the Vector Tile Service.
	VTS
	// ZXY is the Maps API ZXY tile service.
	ZXY
)

// String returns the lowercase service name used in endpoint paths.
func (s Service) String() string {
	switch s {
	case WFS:
		return "wfs"
	case WMTS:
		return "wmts"
	case VTS:
		return "vts"
	case ZXY:
		return "zxy"
	default:
		return fmt.Sprintf("Service(%d)", int(s))
	}
}

// ParseService resolves a service name case-insensitively.
func ParseService(name string) (Service, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wfs":
		return WFS, nil
	case "wmts":
		return WMTS, nil
	case "vts":
		return VTS, nil
	case "zxy":
		return ZXY, nil
	default:
		return 0, fmt.Errorf("products: %q is not a valid API service (use wfs, wmts, vts or zxy)", name)
	}
}

// Catalog is the set of product names one API service offers, split by data
// tier. Open products need only an API key; premium products need a paid
// plan.
type Catalog struct {
	Open    []string
	Premium []string
}

// All returns every product in the catalog, open tier first.
func (c Catalog) All() []string {
	all := make([]string, 0, len(c.Open)+len(c.Premium))
	all = append(all, c.Open...)
	all = append(all, c.Premium...)
	return all
}

// IsOpen reports whether the product is available as open data.
func (c Catalog) IsOpen(name string) bool {
	return contains(c.Open, name)
}

// IsPremium reports whether the product is a premium product.
func (c Catalog) IsPremium(name string) bool {
	return contains(c.Premium, name)
}

func contains(list []string, name string) bool {
	for _, entry := range list {
		if entry == name {
			return true
		}
	}
	return false
}

var tileCatalog = Catalog{
	Open: []string{
		"Light_3857",
		"Light_27700",
		"Outdoor_3857",
		"Outdoor_27700",
		"Road_3857",
		"Road_27700",
	},
	Premium: []string{
		"Leisure_27700",
	},
}

// catalogs maps each service to its product catalog, resolved once at
// startup.
var catalogs = map[Service]Catalog{
	WFS: {
		Open: []string{
			"Zoomstack_Airports",
			"Zoomstack_Boundaries",
			"Zoomstack_Contours",
			"Zoomstack_DistrictBuildings",
			"Zoomstack_ETL",
			"Zoomstack_Foreshore",
			"Zoomstack_Greenspace",
			"Zoomstack_LocalBuildings",
			"Zoomstack_Names",
			"Zoomstack_NationalParks",
			"Zoomstack_Rail",
			"Zoomstack_RailwayStations",
			"Zoomstack_RoadsLocal",
			"Zoomstack_RoadsNational",
			"Zoomstack_RoadsRegional",
			"Zoomstack_Sites",
			"Zoomstack_Surfacewater",
			"Zoomstack_UrbanAreas",
			"Zoomstack_Waterlines",
			"Zoomstack_Woodland",
			"OpenUSRN_USRN",
			"OpenTOID_HighwaysNetworkToid",
			"OpenTOID_SitesLayerToid",
			"OpenTOID_TopographyLayerToid",
		},
		Premium: []string{
			"Highways_Dedication",
			"Highways_Road",
			"Highways_RoadLink",
			"Highways_RoadNode",
			"Greenspace_GreenspaceArea",
			"Sites_FunctionalSite",
			"Topography_BoundaryLine",
			"Topography_CartographicSymbol",
			"Topography_CartographicText",
			"Topography_TopographicArea",
			"Topography_TopographicLine",
			"Topography_TopographicPoint",
			"Water_WatercourseLink",
			"WaterNetwork_HydroNode",
		},
	},
	WMTS: tileCatalog,
	VTS: {
		Open: []string{"OpenZoomstack"},
	},
	ZXY: tileCatalog,
}

// Lookup returns the catalog for the service. Unknown services yield an
// empty catalog.
func Lookup(service Service) Catalog {
	return catalogs[service]
}

// Suggest returns catalog entries containing the candidate name, compared
// case-insensitively. Used to build "best match" hints in error messages.
func Suggest(name string, c Catalog) []string {
	var matches []string
	lower := strings.ToLower(name)
	for _, product := range c.All() {
		if strings.Contains(strings.ToLower(product), lower) {
			matches = append(matches, product)
		}
	}
	return matches
}
