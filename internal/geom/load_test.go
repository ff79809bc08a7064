package geom

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCollection = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"name":"a"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
 {"type":"Feature","properties":{},"geometry":{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}},
 {"type":"Feature","id":"mp","properties":{},"geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,5]]]]}},
 {"type":"Feature","properties":{"id":"c1","renderType":"circle","centerCoordinates":[2,3]},"geometry":{"type":"Polygon","coordinates":[[[2,3.1],[2.1,3],[2,2.9],[2,3.1]]]}}
]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDecodeGeoJSON(t *testing.T) {
	fc, err := DecodeGeoJSON([]byte(sampleCollection))
	require.NoError(t, err)
	require.Len(t, fc.Features, 5)

	poly := fc.Features[0]
	assert.Equal(t, GeometryPolygon, poly.Geometry.Type)
	assert.Equal(t, RenderPolygon, poly.RenderType())
	attrs, ok := poly.Properties.(AttributeProperties)
	require.True(t, ok)
	assert.Equal(t, "a", attrs.Attributes["name"])
	assert.NotEmpty(t, poly.ID())

	assert.Equal(t, GeometryMultiPoint, fc.Features[1].Geometry.Type)
	assert.Equal(t, RenderPoint, fc.Features[1].RenderType())

	// multipolygon parts become separate features
	assert.Equal(t, "mp", fc.Features[2].ID())
	assert.NotEqual(t, "mp", fc.Features[3].ID())
	assert.Equal(t, GeometryPolygon, fc.Features[3].Geometry.Type)

	circle := fc.Features[4]
	assert.Equal(t, GeometryCircle, circle.Geometry.Type)
	assert.Equal(t, "c1", circle.ID())
	cp, ok := circle.Properties.(CircleProperties)
	require.True(t, ok)
	require.NotNil(t, cp.CenterCoordinates)
	assert.Equal(t, Position{2, 3}, *cp.CenterCoordinates)
	assert.Len(t, GetFeatureCoordinates(&circle), 4)

	bb, ok := fc.BBox()
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 6, MaxY: 6}, bb)
}

func TestSplitPartsOwnTheirAttributes(t *testing.T) {
	fc, err := DecodeGeoJSON([]byte(`{"type":"Feature","properties":{"name":"lakes"},"geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,5]]]]}}`))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0].Properties.(AttributeProperties)
	second := fc.Features[1].Properties.(AttributeProperties)
	first.Attributes["name"] = "changed"
	assert.Equal(t, "lakes", second.Attributes["name"])
}

func TestDecodeGeoJSONBareGeometry(t *testing.T) {
	fc, err := DecodeGeoJSON([]byte(`{"type":"Point","coordinates":[1,2]}`))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, RenderPoint, fc.Features[0].RenderType())
	assert.Equal(t, []Position{{1, 2}}, GetFeatureCoordinates(&fc.Features[0]))
}

func TestDecodeGeoJSONErrors(t *testing.T) {
	for _, in := range []string{
		`{}`,
		`not json`,
		`{"type":"FeatureCollection","features":[]}`,
	} {
		_, err := DecodeGeoJSON([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestCircleGeoJSONRoundTrip(t *testing.T) {
	center := Position{-2.93, 43.26}
	f := CreateCircle(center, Position{-2.92, 43.26}, CircleProperties{
		BaseProperties:    BaseProperties{ID: "circle-1", RenderType: RenderCircle},
		CenterCoordinates: &center,
	})
	data, err := json.Marshal(FeatureCollection{Features: []Feature{f}})
	require.NoError(t, err)

	fc, err := DecodeGeoJSON(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	got := fc.Features[0]
	assert.Equal(t, "circle-1", got.ID())
	assert.Equal(t, GeometryCircle, got.Geometry.Type)
	cp, ok := got.Properties.(CircleProperties)
	require.True(t, ok)
	require.NotNil(t, cp.CenterCoordinates)
	assert.InDelta(t, center[0], cp.CenterCoordinates[0], 1e-12)
	assert.InDelta(t, center[1], cp.CenterCoordinates[1], 1e-12)

	want := GetFeatureCoordinates(&f)
	have := GetFeatureCoordinates(&got)
	require.Len(t, have, len(want))
	for i := range want {
		assert.InDelta(t, want[i][0], have[i][0], 1e-12)
		assert.InDelta(t, want[i][1], have[i][1], 1e-12)
	}
}

func TestParseWKT(t *testing.T) {
	fc, err := ParseWKT("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, GeometryPolygon, fc.Features[0].Geometry.Type)
	assert.Len(t, GetFeatureCoordinates(&fc.Features[0]), 5)

	fc, err = ParseWKT("  LINESTRING(0 0, 1 1, 2 2)\n")
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, RenderLine, fc.Features[0].RenderType())

	_, err = ParseWKT("")
	assert.Error(t, err)
	_, err = ParseWKT("GEOMETRYCOLLECTION(POINT(1 2))")
	assert.Error(t, err)
	_, err = ParseWKT("CIRCLE(1 2)")
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "points.csv", "name,lat,lon\nA,43.2,-2.9\nB,bad,1\n")
	fc, err := LoadCSV(p)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	assert.Equal(t, orb.Point{-2.9, 43.2}, f.Geometry.Coordinates)
	attrs, ok := f.Properties.(AttributeProperties)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "A"}, attrs.Attributes)

	_, err = LoadCSV(writeFile(t, "nocoords.csv", "a,b\n1,2\n"))
	assert.Error(t, err)
}

const samplePlacemarks = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Bilbao</name>
      <Point><coordinates>-2.935,43.263,0</coordinates></Point>
    </Placemark>
    <Placemark>
      <name>Route</name>
      <LineString><coordinates>0,0 1,1</coordinates></LineString>
    </Placemark>
    <Folder>
      <Placemark>
        <Point><coordinates>1.5,2.5 bad 3,4</coordinates></Point>
      </Placemark>
    </Folder>
  </Document>
</kml>`

func TestLoadKML(t *testing.T) {
	fc, err := LoadKML(writeFile(t, "places.kml", samplePlacemarks))
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	first := fc.Features[0]
	assert.Equal(t, GeometryPoint, first.Geometry.Type)
	assert.Equal(t, RenderPoint, first.RenderType())
	assert.Equal(t, orb.Point{-2.935, 43.263}, first.Geometry.Coordinates)
	assert.NotEmpty(t, first.ID())
	attrs, ok := first.Properties.(AttributeProperties)
	require.True(t, ok)
	assert.Equal(t, "Bilbao", attrs.Attributes["name"])

	assert.Equal(t, orb.Point{1.5, 2.5}, fc.Features[1].Geometry.Coordinates)
	assert.Equal(t, orb.Point{3, 4}, fc.Features[2].Geometry.Coordinates)
	assert.NotEqual(t, fc.Features[1].ID(), fc.Features[2].ID())

	_, err = LoadKML(writeFile(t, "empty.kml", "<kml><Document/></kml>"))
	assert.Error(t, err)
	_, err = LoadKML(writeFile(t, "broken.kml", "<kml><Placemark>"))
	assert.Error(t, err)
}

func TestLoadFeatureCollection(t *testing.T) {
	fc, err := LoadFeatureCollection(writeFile(t, "shape.wkt", "POINT(3 4)"))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	fc, err = LoadFeatureCollection(writeFile(t, "data.geojson", sampleCollection))
	require.NoError(t, err)
	assert.Len(t, fc.Features, 5)

	fc, err = LoadFeatureCollection(writeFile(t, "places.kml", samplePlacemarks))
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)

	_, err = LoadFeatureCollection(writeFile(t, "track.gpx", "<gpx/>"))
	assert.Error(t, err)

	assert.True(t, SupportedExt(".GeoJSON"))
	assert.True(t, SupportedExt(".kml"))
	assert.False(t, SupportedExt(".gpx"))
}
