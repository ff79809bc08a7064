package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// SupportedExt reports whether LoadFeatureCollection understands the file extension.
func SupportedExt(ext string) bool {
	return lo.Contains(supportedExts, strings.ToLower(ext))
}

var supportedExts = []string{".geojson", ".json", ".csv", ".wkt", ".kml"}

// LoadFeatureCollection loads a supported file into editor features.
func LoadFeatureCollection(path string) (FeatureCollection, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return FeatureCollection{}, err
		}
		fc, err := ParseWKT(string(data))
		if err != nil {
			return FeatureCollection{}, fmt.Errorf("wkt: %w", err)
		}
		return fc, nil
	}
	return FeatureCollection{}, fmt.Errorf("unsupported file: %s", ext)
}
