package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cast"
)

// LoadGeoJSON reads a GeoJSON file holding a FeatureCollection, a Feature or a bare geometry.
func LoadGeoJSON(path string) (FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FeatureCollection{}, err
	}
	return DecodeGeoJSON(data)
}

// DecodeGeoJSON converts GeoJSON into editor features. Multi-geometries are
// split into one feature per part.
func DecodeGeoJSON(data []byte) (FeatureCollection, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return FeatureCollection{}, err
	}
	var gfs []*geojson.Feature
	switch head.Type {
	case "":
		return FeatureCollection{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return FeatureCollection{}, err
		}
		gfs = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return FeatureCollection{}, err
		}
		gfs = []*geojson.Feature{f}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return FeatureCollection{}, err
		}
		gfs = []*geojson.Feature{geojson.NewFeature(g.Geometry())}
	}
	var out FeatureCollection
	for _, gf := range gfs {
		if gf == nil || gf.Geometry == nil {
			continue
		}
		out.Features = append(out.Features, fromGeoJSON(gf)...)
	}
	if len(out.Features) == 0 {
		return FeatureCollection{}, errors.New("no geometries found")
	}
	return out, nil
}

func fromGeoJSON(gf *geojson.Feature) []Feature {
	attrs := maps.Clone(map[string]any(gf.Properties))
	if attrs == nil {
		attrs = map[string]any{}
	}
	id, _ := attrs["id"].(string)
	if id == "" && gf.ID != nil {
		id = fmt.Sprint(gf.ID)
	}
	rs, _ := attrs["renderType"].(string)
	render := RenderType(rs)

	if poly, ok := gf.Geometry.(orb.Polygon); ok && render == RenderCircle && len(poly) > 0 {
		if center, ok := parsePosition(attrs["centerCoordinates"]); ok {
			return []Feature{{
				Properties: CircleProperties{
					BaseProperties:    BaseProperties{ID: idOrNew(id), RenderType: RenderCircle},
					CenterCoordinates: &center,
				},
				Geometry: Geometry{Type: GeometryCircle, Coordinates: poly[0]},
			}}
		}
	}

	var geoms []Geometry
	switch g := gf.Geometry.(type) {
	case orb.Point:
		geoms = append(geoms, Geometry{Type: GeometryPoint, Coordinates: g})
	case orb.MultiPoint:
		geoms = append(geoms, Geometry{Type: GeometryMultiPoint, Coordinates: g})
	case orb.LineString:
		geoms = append(geoms, Geometry{Type: GeometryLineString, Coordinates: g})
	case orb.MultiLineString:
		for _, ls := range g {
			geoms = append(geoms, Geometry{Type: GeometryLineString, Coordinates: ls})
		}
	case orb.Polygon:
		geoms = append(geoms, Geometry{Type: GeometryPolygon, Coordinates: g})
	case orb.MultiPolygon:
		for _, p := range g {
			geoms = append(geoms, Geometry{Type: GeometryPolygon, Coordinates: p})
		}
	}
	out := make([]Feature, 0, len(geoms))
	for i, g := range geoms {
		fid := id
		if fid == "" || i > 0 {
			fid = uuid.NewString()
		}
		rt := render
		if rt == "" {
			rt = defaultRenderType(g.Type)
		}
		if rt == RenderRectangle {
			out = append(out, Feature{Properties: RectangleProperties{BaseProperties{ID: fid, RenderType: rt}}, Geometry: g})
			continue
		}
		out = append(out, Feature{
			Properties: AttributeProperties{BaseProperties: BaseProperties{ID: fid, RenderType: rt}, Attributes: maps.Clone(attrs)},
			Geometry:   g,
		})
	}
	return out
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func defaultRenderType(t GeometryType) RenderType {
	switch t {
	case GeometryPoint, GeometryMultiPoint:
		return RenderPoint
	case GeometryLineString:
		return RenderLine
	case GeometryCircle:
		return RenderCircle
	case GeometryRectangle:
		return RenderRectangle
	}
	return RenderPolygon
}

func parsePosition(v any) (Position, bool) {
	switch a := v.(type) {
	case []any:
		if len(a) >= 2 && IsNumeric(a[0]) && IsNumeric(a[1]) {
			return Position{cast.ToFloat64(a[0]), cast.ToFloat64(a[1])}, true
		}
	case []float64:
		if len(a) >= 2 {
			return Position{a[0], a[1]}, true
		}
	case Position:
		return a, true
	}
	return Position{}, false
}

// GeoJSON converts the collection into standard GeoJSON. Circles and
// rectangles become Polygons; their render tags and circle centers are kept
// in the properties so they load back as the same kind.
func (fc FeatureCollection) GeoJSON() *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		if gf := f.GeoJSON(); gf != nil {
			out.Append(gf)
		}
	}
	return out
}

func (fc FeatureCollection) MarshalJSON() ([]byte, error) {
	return fc.GeoJSON().MarshalJSON()
}

// GeoJSON converts a single feature. It returns nil when the feature has no geometry.
func (f Feature) GeoJSON() *geojson.Feature {
	g := f.Geometry.Coordinates
	if g == nil {
		return nil
	}
	if r, ok := g.(orb.Ring); ok {
		g = orb.Polygon{r}
	}
	gf := geojson.NewFeature(g)
	switch p := f.Properties.(type) {
	case AttributeProperties:
		for k, v := range p.Attributes {
			gf.Properties[k] = v
		}
	case CircleProperties:
		if p.CenterCoordinates != nil {
			gf.Properties["centerCoordinates"] = []float64{p.CenterCoordinates[0], p.CenterCoordinates[1]}
		}
	}
	if id := f.ID(); id != "" {
		gf.ID = id
		gf.Properties["id"] = id
	}
	if rt := f.RenderType(); rt != "" {
		gf.Properties["renderType"] = string(rt)
	}
	return gf
}
