// Package collection holds the editable feature set as an immutable-update
// structure: every change yields a new value and earlier snapshots stay valid.
package collection

import "geodraw/internal/geom"

type Immutable struct {
	features []geom.Feature
}

var _ geom.FeatureCollectionBuilder = (*Immutable)(nil)

// New wraps fc. The feature slice is copied.
func New(fc geom.FeatureCollection) *Immutable {
	return &Immutable{features: cloneFeatures(fc.Features, 0)}
}

// AddFeature returns a new collection with feature appended.
func (c *Immutable) AddFeature(feature geom.Feature) geom.FeatureCollectionBuilder {
	next := cloneFeatures(c.list(), 1)
	next = append(next, feature)
	return &Immutable{features: next}
}

// GetObject returns a snapshot of the features.
func (c *Immutable) GetObject() geom.FeatureCollection {
	return geom.FeatureCollection{Features: cloneFeatures(c.list(), 0)}
}

func (c *Immutable) Len() int {
	return len(c.list())
}

func (c *Immutable) list() []geom.Feature {
	if c == nil {
		return nil
	}
	return c.features
}

func cloneFeatures(in []geom.Feature, extra int) []geom.Feature {
	out := make([]geom.Feature, len(in), len(in)+extra)
	copy(out, in)
	return out
}
