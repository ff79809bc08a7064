package editmode

import "geodraw/internal/geom"

// BaseMode owns the state shared by drawing modes: the clicks of the current
// gesture and the tentative feature previewing it.
type BaseMode struct {
	clickSequence    []ClickEvent
	tentativeFeature *geom.Feature
}

// ClickSequence returns a copy of the clicks recorded in the current gesture.
func (m *BaseMode) ClickSequence() []ClickEvent {
	out := make([]ClickEvent, len(m.clickSequence))
	copy(out, m.clickSequence)
	return out
}

// TentativeFeature returns the preview feature, or nil when no gesture is in progress.
func (m *BaseMode) TentativeFeature() *geom.Feature {
	return m.tentativeFeature
}

func (m *BaseMode) setTentativeFeature(f *geom.Feature) {
	m.tentativeFeature = f
}

// Reset aborts the gesture in progress.
func (m *BaseMode) Reset() {
	m.clickSequence = nil
	m.tentativeFeature = nil
}

// GetEditHandlesFromFeature derives the handles drawn over feature. Circles
// get four evenly spaced handles, rectangles one per corner and anything else
// one per vertex.
func (m *BaseMode) GetEditHandlesFromFeature(feature geom.Feature, featureIndex int) []EditHandle {
	coordinates := geom.GetFeatureCoordinates(&feature)
	if coordinates == nil {
		return nil
	}
	var handles []EditHandle
	add := func(i int, p geom.Position) {
		handles = append(handles, EditHandle{
			Position:      p,
			PositionIndex: i,
			FeatureIndex:  featureIndex,
			Type:          HandleExisting,
			GuideType:     geom.GuideEditHandle,
		})
	}
	switch feature.RenderType() {
	case geom.RenderCircle:
		samples := geom.GetCircleEditHandleCoordinate(coordinates)
		step := 0
		if len(samples) > 0 {
			step = (len(coordinates) + 3) / 4
		}
		for i, p := range samples {
			add(i*step, p)
		}
	case geom.RenderRectangle:
		for i := 0; i < 4 && i < len(coordinates); i++ {
			add(i, coordinates[i])
		}
	default:
		n := len(coordinates)
		if n > 1 && coordinates[0] == coordinates[n-1] {
			n--
		}
		for i := 0; i < n; i++ {
			add(i, coordinates[i])
		}
	}
	return handles
}
