package geom

import "github.com/paulmach/orb"

// Position is a 2D coordinate: x/longitude then y/latitude.
type Position = orb.Point

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has a non-zero extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func (b BBox) extend(p Position, first bool) BBox {
	if first {
		return BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
	}
	if p[0] < b.MinX {
		b.MinX = p[0]
	}
	if p[1] < b.MinY {
		b.MinY = p[1]
	}
	if p[0] > b.MaxX {
		b.MaxX = p[0]
	}
	if p[1] > b.MaxY {
		b.MaxY = p[1]
	}
	return b
}

type GeometryType string

const (
	GeometryPoint      GeometryType = "Point"
	GeometryMultiPoint GeometryType = "MultiPoint"
	GeometryLineString GeometryType = "LineString"
	GeometryPolygon    GeometryType = "Polygon"
	GeometryCircle     GeometryType = "Circle"
	GeometryRectangle  GeometryType = "Rectangle"
)

type RenderType string

const (
	RenderPoint     RenderType = "point"
	RenderLine      RenderType = "line"
	RenderPolygon   RenderType = "polygon"
	RenderCircle    RenderType = "circle"
	RenderRectangle RenderType = "rectangle"
)

// GuideType marks overlay geometry that is not part of committed data.
// The zero value means "not a guide".
type GuideType string

const (
	GuideNone       GuideType = ""
	GuideTentative  GuideType = "tentative"
	GuideEditHandle GuideType = "editHandle"
)

// BaseProperties are carried by every feature regardless of its kind.
type BaseProperties struct {
	ID         string
	RenderType RenderType
	GuideType  GuideType
}

func (b BaseProperties) Common() BaseProperties { return b }

// Properties is the per-kind property set of a feature. Each kind embeds
// BaseProperties and adds the fields it guarantees.
type Properties interface {
	Common() BaseProperties
}

// CircleProperties records the center so the radius can be edited later.
// CenterCoordinates is nil on tentative circles.
type CircleProperties struct {
	BaseProperties
	CenterCoordinates *Position
}

type RectangleProperties struct {
	BaseProperties
}

// AttributeProperties hold the free-form attributes of features loaded from files.
type AttributeProperties struct {
	BaseProperties
	Attributes map[string]any
}

type Geometry struct {
	Type        GeometryType
	Coordinates orb.Geometry
}

type Feature struct {
	Properties Properties
	Geometry   Geometry
}

// ID returns the feature identifier, or "" when it has no properties.
func (f Feature) ID() string {
	if f.Properties == nil {
		return ""
	}
	return f.Properties.Common().ID
}

// RenderType returns the render tag, or "" when it has no properties.
func (f Feature) RenderType() RenderType {
	if f.Properties == nil {
		return ""
	}
	return f.Properties.Common().RenderType
}

type FeatureCollection struct {
	Features []Feature
}

// BBox returns the bounds of every coordinate in the collection.
func (fc FeatureCollection) BBox() (BBox, bool) {
	var bb BBox
	n := 0
	for i := range fc.Features {
		for _, p := range allPositions(fc.Features[i].Geometry.Coordinates) {
			bb = bb.extend(p, n == 0)
			n++
		}
	}
	return bb, n > 0
}

// FeatureCollectionBuilder is an append-only, immutable-update collection.
// AddFeature never mutates the receiver.
type FeatureCollectionBuilder interface {
	AddFeature(feature Feature) FeatureCollectionBuilder
	GetObject() FeatureCollection
}

func allPositions(g orb.Geometry) []Position {
	switch c := g.(type) {
	case orb.Point:
		return []Position{c}
	case orb.MultiPoint:
		return c
	case orb.LineString:
		return c
	case orb.Ring:
		return c
	case orb.Polygon:
		var out []Position
		for _, r := range c {
			out = append(out, r...)
		}
		return out
	case orb.MultiLineString:
		var out []Position
		for _, ls := range c {
			out = append(out, ls...)
		}
		return out
	case orb.MultiPolygon:
		var out []Position
		for _, poly := range c {
			out = append(out, allPositions(poly)...)
		}
		return out
	}
	return nil
}
