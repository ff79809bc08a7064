package geom

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type kmlPlacemark struct {
	Name  string `xml:"name"`
	Point *struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

type kmlFolder struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlFolder    `xml:"Folder"`
}

type kmlDoc struct {
	kmlFolder
	Document *kmlFolder `xml:"Document"`
}

func (f kmlFolder) placemarks() []kmlPlacemark {
	out := f.Placemarks
	for _, sub := range f.Folders {
		out = append(out, sub.placemarks()...)
	}
	return out
}

// LoadKML reads Placemark > Point coordinates ("lon,lat[,alt]", altitude
// ignored) into point features. A placemark name becomes the "name" attribute.
func LoadKML(path string) (FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FeatureCollection{}, err
	}
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return FeatureCollection{}, err
	}
	pms := doc.placemarks()
	if doc.Document != nil {
		pms = append(pms, doc.Document.placemarks()...)
	}

	var out FeatureCollection
	for _, pm := range pms {
		if pm.Point == nil {
			continue
		}
		// coordinates may hold several tuples separated by whitespace
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			attrs := map[string]any{}
			if pm.Name != "" {
				attrs["name"] = pm.Name
			}
			out.Features = append(out.Features, Feature{
				Properties: AttributeProperties{
					BaseProperties: BaseProperties{ID: uuid.NewString(), RenderType: RenderPoint},
					Attributes:     attrs,
				},
				Geometry: Geometry{Type: GeometryPoint, Coordinates: orb.Point{lon, lat}},
			})
		}
	}
	if len(out.Features) == 0 {
		return FeatureCollection{}, errors.New("kml: no points found")
	}
	return out, nil
}
