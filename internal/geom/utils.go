package geom

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cast"
)

// IsNumeric reports whether val is a scalar that converts to a finite number.
// Slices, arrays, maps, nil and booleans are never numeric.
func IsNumeric(val any) bool {
	switch v := val.(type) {
	case nil, bool:
		return false
	case string:
		val = strings.TrimSpace(v)
	}
	f, err := cast.ToFloat64E(val)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FindClosestPointOnLineSegment projects p onto the line through p1 and p2.
// ok is false when the projection falls outside the segment's bounding box.
func FindClosestPointOnLineSegment(p1, p2, p Position) (Position, bool) {
	dx := p2[0] - p1[0]
	// vertical line: slope is infinite, project horizontally
	if dx == 0 {
		q := Position{p1[0], p[1]}
		return q, inBounds(p1, p2, q)
	}
	k := (p2[1] - p1[1]) / dx
	b := p1[1] - k*p1[0]

	if p[0]*k+b-p[1] == 0 {
		return p, inBounds(p1, p2, p)
	}

	qx := (k*p[1] + p[0] - k*b) / (k*k + 1)
	qy := k*qx + b
	q := Position{qx, qy}
	return q, inBounds(p1, p2, q)
}

func inBounds(p1, p2, p Position) bool {
	minX, maxX := math.Min(p1[0], p2[0]), math.Max(p1[0], p2[0])
	minY, maxY := math.Min(p1[1], p2[1]), math.Max(p1[1], p2[1])
	return p[0] >= minX && p[0] <= maxX && p[1] >= minY && p[1] <= maxY
}

// GetCircleEditHandleCoordinate samples up to four evenly spaced points of a circle ring.
func GetCircleEditHandleCoordinate(coordinates []Position) []Position {
	if len(coordinates) < 4 {
		return []Position{}
	}
	step := int(math.Ceil(float64(len(coordinates)) / 4))
	out := make([]Position, 0, 4)
	for i := 0; i < 4; i++ {
		idx := i * step
		if idx >= len(coordinates) {
			continue
		}
		out = append(out, coordinates[idx])
	}
	return out
}

// GetFeatureCoordinates returns the outer ring of polygon features and the
// plain coordinate sequence of everything else. It returns nil when the
// feature has no coordinates.
func GetFeatureCoordinates(feature *Feature) []Position {
	if feature == nil || feature.Geometry.Coordinates == nil {
		return nil
	}
	c := feature.Geometry.Coordinates
	if feature.Geometry.Type == GeometryPolygon {
		if poly, ok := c.(orb.Polygon); ok {
			if len(poly) == 0 {
				return nil
			}
			return poly[0]
		}
	}
	switch g := c.(type) {
	case orb.Ring:
		return g
	case orb.LineString:
		return g
	case orb.MultiPoint:
		return g
	case orb.Point:
		return []Position{g}
	}
	return nil
}

// UpdateRectanglePosition moves one corner of an axis-aligned rectangle and
// re-derives its neighbours so the shape stays rectangular.
//
// Corners are numbered clockwise from the top-left:
//
//	p0 ---- p1
//	|        |
//	p3 ---- p2
//
// The corner opposite the moved one (index+2) is the fixed anchor. Polygon
// features get a closed ring back, anything else the open four corners.
func UpdateRectanglePosition(feature *Feature, editHandleIndex int, mapCoords Position) []Position {
	coordinates := GetFeatureCoordinates(feature)
	if len(coordinates) < 4 {
		return nil
	}
	var points [4]Position
	copy(points[:], coordinates[:4])

	moved := mod4(editHandleIndex)
	points[moved] = mapCoords

	anchor := points[mod4(editHandleIndex+2)]
	points[mod4(editHandleIndex+1)] = Position{mapCoords[0], anchor[1]}
	points[mod4(editHandleIndex+3)] = Position{anchor[0], mapCoords[1]}

	if feature.Geometry.Type == GeometryPolygon {
		return []Position{points[0], points[1], points[2], points[3], points[0]}
	}
	return points[:]
}

func mod4(i int) int {
	return ((i % 4) + 4) % 4
}
