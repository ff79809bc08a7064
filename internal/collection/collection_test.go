package collection

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geodraw/internal/geom"
)

func point(id string, x, y float64) geom.Feature {
	return geom.Feature{
		Properties: geom.AttributeProperties{BaseProperties: geom.BaseProperties{ID: id, RenderType: geom.RenderPoint}},
		Geometry:   geom.Geometry{Type: geom.GeometryPoint, Coordinates: orb.Point{x, y}},
	}
}

func TestAddFeatureLeavesReceiverUntouched(t *testing.T) {
	empty := New(geom.FeatureCollection{})
	one := empty.AddFeature(point("a", 1, 1))
	two := one.AddFeature(point("b", 2, 2))

	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.GetObject().Features)
	require.Len(t, one.GetObject().Features, 1)
	require.Len(t, two.GetObject().Features, 2)
	assert.Equal(t, "a", two.GetObject().Features[0].ID())
	assert.Equal(t, "b", two.GetObject().Features[1].ID())
}

func TestBranchesDoNotShareStorage(t *testing.T) {
	base := New(geom.FeatureCollection{Features: []geom.Feature{point("a", 0, 0)}})
	left := base.AddFeature(point("left", 1, 0))
	right := base.AddFeature(point("right", 0, 1))

	assert.Equal(t, "left", left.GetObject().Features[1].ID())
	assert.Equal(t, "right", right.GetObject().Features[1].ID())
}

func TestSnapshotsAreCopies(t *testing.T) {
	src := geom.FeatureCollection{Features: []geom.Feature{point("a", 0, 0)}}
	c := New(src)
	src.Features[0] = point("changed", 9, 9)
	assert.Equal(t, "a", c.GetObject().Features[0].ID())

	snap := c.GetObject()
	snap.Features[0] = point("changed", 9, 9)
	assert.Equal(t, "a", c.GetObject().Features[0].ID())
}

func TestNilCollection(t *testing.T) {
	var c *Immutable
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.GetObject().Features)
	assert.Len(t, c.AddFeature(point("a", 0, 0)).GetObject().Features, 1)
}
