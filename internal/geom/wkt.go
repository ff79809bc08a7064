package geom

import (
	"errors"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// ParseWKT parses a WKT string into features.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON, MULTIPOLYGON.
func ParseWKT(s string) (FeatureCollection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FeatureCollection{}, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return FeatureCollection{}, err
	}
	if _, ok := g.(orb.Collection); ok {
		return FeatureCollection{}, errors.New("unsupported wkt type: GEOMETRYCOLLECTION")
	}
	fs := fromGeoJSON(geojson.NewFeature(g))
	if len(fs) == 0 {
		return FeatureCollection{}, errors.New("wkt: no coordinates parsed")
	}
	return FeatureCollection{Features: fs}, nil
}
