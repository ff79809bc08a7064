package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LoadCSV reads a CSV with latitude/longitude columns and returns one point
// feature per row. The remaining columns become the feature attributes.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x (case-insensitive).
func LoadCSV(path string) (FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return FeatureCollection{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return FeatureCollection{}, err
	}
	if len(recs) == 0 {
		return FeatureCollection{}, errors.New("empty csv")
	}
	header := recs[0]
	idxLat, idxLon := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return FeatureCollection{}, errors.New("csv: latitude/longitude columns not found")
	}
	var out FeatureCollection
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		attrs := make(map[string]any, len(header))
		for i, h := range header {
			if i == idxLat || i == idxLon || i >= len(row) {
				continue
			}
			attrs[h] = row[i]
		}
		out.Features = append(out.Features, Feature{
			Properties: AttributeProperties{
				BaseProperties: BaseProperties{ID: uuid.NewString(), RenderType: RenderPoint},
				Attributes:     attrs,
			},
			Geometry: Geometry{Type: GeometryPoint, Coordinates: orb.Point{lon, lat}},
		})
	}
	if len(out.Features) == 0 {
		return FeatureCollection{}, errors.New("csv: no valid points parsed")
	}
	return out, nil
}
