package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// CircleSteps is the number of sides of the polygon approximating a circle.
	CircleSteps = 64
	// MinCircleRadius keeps zero-distance gestures from producing a degenerate ring.
	MinCircleRadius = 0.001
)

// Units of great-circle distances.
type Units string

const (
	Kilometers Units = "kilometers"
	Meters     Units = "meters"
	Miles      Units = "miles"
)

func (u Units) meters() float64 {
	switch u {
	case Meters:
		return 1
	case Miles:
		return 1609.344
	default:
		return 1000
	}
}

// ParseUnits maps a config value onto Units. The empty string means kilometers.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "km", "kilometers", "kilometres":
		return Kilometers, nil
	case "m", "meters", "metres":
		return Meters, nil
	case "mi", "miles":
		return Miles, nil
	}
	return "", fmt.Errorf("unknown distance units %q", s)
}

// Distance returns the great-circle distance between a and b.
func Distance(a, b Position, units Units) float64 {
	return geo.DistanceHaversine(a, b) / units.meters()
}

// CirclePolygon approximates a circle of the given radius with a closed ring
// of steps+1 coordinates, walking counter-clockwise from north.
func CirclePolygon(center Position, radius float64, steps int, units Units) orb.Polygon {
	if steps < 3 {
		steps = 3
	}
	dist := radius * units.meters()
	ring := make(orb.Ring, 0, steps+1)
	for i := 0; i < steps; i++ {
		bearing := float64(i) * -360 / float64(steps)
		ring = append(ring, geo.PointAtBearingAndDistance(center, bearing, dist))
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

type circleConfig struct {
	units Units
}

type CircleOption func(*circleConfig)

// WithUnits sets the units of both the measured radius and the minimum radius.
func WithUnits(u Units) CircleOption {
	return func(c *circleConfig) {
		if u != "" {
			c.units = u
		}
	}
}

// CreateCircle builds a circle feature centered on center whose edge passes
// through edge. The geometry is tagged Circle and holds the flattened outer
// ring.
func CreateCircle(center, edge Position, properties Properties, opts ...CircleOption) Feature {
	cfg := circleConfig{units: Kilometers}
	for _, o := range opts {
		o(&cfg)
	}
	radius := CircleRadius(center, edge, cfg.units)
	poly := CirclePolygon(center, radius, CircleSteps, cfg.units)
	return Feature{
		Properties: properties,
		Geometry: Geometry{
			Type:        GeometryCircle,
			Coordinates: poly[0],
		},
	}
}

// CircleRadius returns the radius a circle would get from center and edge.
func CircleRadius(center, edge Position, units Units) float64 {
	return math.Max(Distance(center, edge, units), MinCircleRadius)
}

// UpdateCircleRadius resizes a committed circle so its edge passes through
// mapCoords. It returns nil when the feature has no recorded center.
func UpdateCircleRadius(feature Feature, mapCoords Position, opts ...CircleOption) *Feature {
	props, ok := feature.Properties.(CircleProperties)
	if !ok || props.CenterCoordinates == nil {
		return nil
	}
	f := CreateCircle(*props.CenterCoordinates, mapCoords, props, opts...)
	return &f
}
