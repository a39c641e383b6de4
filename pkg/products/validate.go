package products

import (
	"fmt"
	"strings"

	"github.com/robert-malhotra/go-osdatahub/pkg/spatial"
)

// UnknownProductError is returned for a type name absent from a service's
// catalog.
type UnknownProductError struct {
	Name        string
	Service     Service
	Suggestions []string
}

func (e *UnknownProductError) Error() string {
	msg := fmt.Sprintf("products: %q is not a valid %s product", e.Name, strings.ToUpper(e.Service.String()))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (best matches: %s)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// PremiumProductError is returned when a premium-only product is requested
// without premium access.
type PremiumProductError struct {
	Name        string
	Suggestions []string
}

func (e *PremiumProductError) Error() string {
	msg := fmt.Sprintf("products: %q is only available as a Premium product", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (best matches: %s)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// UnsupportedFormatError is returned for an output format the API no longer
// serves.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("products: %q is not a valid output format (valid formats: geojson)", e.Format)
}

// ValidateTypeName checks the name against the service's catalog. It reports
// whether the product is available as open data.
func ValidateTypeName(name string, service Service, allowPremium bool) (bool, error) {
	catalog := Lookup(service)
	open := catalog.IsOpen(name)
	premium := catalog.IsPremium(name)
	if !open && !premium {
		return false, &UnknownProductError{Name: name, Service: service, Suggestions: Suggest(name, catalog)}
	}
	if !open && !allowPremium {
		return false, &PremiumProductError{Name: name, Suggestions: Suggest(name, catalog)}
	}
	return open, nil
}

// ValidateOutputFormat accepts geojson only, case-insensitively. XML output
// is no longer served upstream.
func ValidateOutputFormat(format string) error {
	if strings.ToLower(format) != "geojson" {
		return &UnsupportedFormatError{Format: format}
	}
	return nil
}

// RequestParams collects everything a feature query must carry. Zero-value
// BBox and Polygon fields mean the corresponding check is skipped.
type RequestParams struct {
	Service      Service
	TypeName     string
	AllowPremium bool
	SRS          spatial.SRS
	OutputFormat string
	BBox         string
	Polygon      string
}

// Validate runs every check a request must pass before transmission. Any
// failure means the request must be rejected; nothing is sent on a partial
// pass.
func (p RequestParams) Validate() error {
	if _, err := ValidateTypeName(p.TypeName, p.Service, p.AllowPremium); err != nil {
		return err
	}
	if _, err := p.SRS.Extent(); err != nil {
		return err
	}
	if p.BBox != "" {
		if _, _, err := spatial.ValidateBBox(p.BBox, p.SRS); err != nil {
			return err
		}
	}
	if p.Polygon != "" {
		if err := spatial.ValidatePolygonString(p.Polygon, p.SRS); err != nil {
			return err
		}
	}
	return ValidateOutputFormat(p.OutputFormat)
}
