package geom

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCircle(t *testing.T) {
	center := Position{-2.935, 43.263}
	edge := Position{-2.90, 43.27}
	props := CircleProperties{BaseProperties: BaseProperties{ID: "c1", RenderType: RenderCircle, GuideType: GuideTentative}}

	f := CreateCircle(center, edge, props)

	assert.Equal(t, GeometryCircle, f.Geometry.Type)
	assert.Equal(t, props, f.Properties)
	ring, ok := f.Geometry.Coordinates.(orb.Ring)
	require.True(t, ok, "circle coordinates are a flat ring")
	require.Len(t, ring, CircleSteps+1)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	radius := Distance(center, edge, Kilometers)
	for i, p := range ring {
		assert.InEpsilon(t, radius, Distance(center, p, Kilometers), 1e-6, "vertex %d", i)
	}
}

func TestCreateCircleMinimumRadius(t *testing.T) {
	center := Position{10, 50}
	f := CreateCircle(center, center, CircleProperties{})
	ring := GetFeatureCoordinates(&f)
	require.Len(t, ring, CircleSteps+1)
	for _, p := range ring[:CircleSteps] {
		d := Distance(center, p, Kilometers)
		assert.Greater(t, d, 0.0)
		assert.InEpsilon(t, MinCircleRadius, d, 1e-6)
	}
	assert.Equal(t, MinCircleRadius, CircleRadius(center, center, Kilometers))
}

func TestCreateCircleUnits(t *testing.T) {
	center := Position{0, 0}
	edge := Position{0.01, 0}
	km := CreateCircle(center, edge, CircleProperties{})
	m := CreateCircle(center, edge, CircleProperties{}, WithUnits(Meters))

	a, b := GetFeatureCoordinates(&km), GetFeatureCoordinates(&m)
	require.Len(t, b, len(a))
	for i := range a {
		assert.InDelta(t, a[i][0], b[i][0], 1e-9)
		assert.InDelta(t, a[i][1], b[i][1], 1e-9)
	}
	assert.InEpsilon(t, 1000*Distance(center, edge, Kilometers), Distance(center, edge, Meters), 1e-9)
}

func TestUpdateCircleRadius(t *testing.T) {
	center := Position{5, 5}
	props := CircleProperties{
		BaseProperties:    BaseProperties{ID: "c", RenderType: RenderCircle},
		CenterCoordinates: &center,
	}
	f := CreateCircle(center, Position{5.1, 5}, props)

	updated := UpdateCircleRadius(f, Position{5.2, 5})
	require.NotNil(t, updated)
	assert.Equal(t, props, updated.Properties)
	ring := GetFeatureCoordinates(updated)
	assert.InEpsilon(t, Distance(center, Position{5.2, 5}, Kilometers), Distance(center, ring[0], Kilometers), 1e-6)

	noCenter := CreateCircle(center, Position{5.1, 5}, CircleProperties{BaseProperties: props.BaseProperties})
	assert.Nil(t, UpdateCircleRadius(noCenter, Position{5.2, 5}))

	other := Feature{Properties: AttributeProperties{}, Geometry: f.Geometry}
	assert.Nil(t, UpdateCircleRadius(other, Position{5.2, 5}))
}

func TestParseUnits(t *testing.T) {
	for in, want := range map[string]Units{"": Kilometers, "km": Kilometers, "Meters": Meters, "mi": Miles} {
		got, err := ParseUnits(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseUnits("furlongs")
	assert.Error(t, err)
}
