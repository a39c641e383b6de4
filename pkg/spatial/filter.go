package spatial

import (
	"fmt"
	"strings"
)

// ValidatePolygonString parses a polygon string and bound-checks every
// vertex against the reference system's envelope. The reference system is
// resolved first, so an unsupported SRS fails before any parsing.
func ValidatePolygonString(text string, srs SRS) error {
	if _, err := srs.Extent(); err != nil {
		return err
	}
	ring, err := ParsePolygon(text)
	if err != nil {
		return err
	}
	if err := ValidateExtent(ring, srs); err != nil {
		attachHint(err, polygonHint)
		return err
	}
	return nil
}

const intersectsTemplate = `<ogc:Filter>
	<ogc:Intersects>
		<ogc:PropertyName>SHAPE</ogc:PropertyName>
		<gml:Polygon srsName="urn:ogc:def:crs:EPSG::%s">
			<gml:outerBoundaryIs>
				<gml:LinearRing>
					<gml:coordinates>%s</gml:coordinates>
				</gml:LinearRing>
			</gml:outerBoundaryIs>
		</gml:Polygon>
	</ogc:Intersects>
</ogc:Filter>`

// IntersectsFilter renders the single-line OGC Intersects filter fragment
// for a polygon string. The coordinate text and SRS code are substituted
// verbatim with no escaping, so callers must run ValidatePolygonString
// first; validated input is limited to numeric, comma and space characters.
func IntersectsFilter(polygonText string, srs SRS) string {
	xml := fmt.Sprintf(intersectsTemplate, srs.Code(), polygonText)
	lines := strings.Split(xml, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "")
}
