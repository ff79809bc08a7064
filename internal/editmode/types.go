package editmode

import "geodraw/internal/geom"

type EditType string

const (
	EditAddFeature EditType = "ADD_FEATURE"
)

// EditAction is handed to ModeProps.OnEdit when a mode commits a change.
type EditAction struct {
	EditType    EditType
	UpdatedData geom.FeatureCollection
	EditContext any
}

// ClickEvent is a recorded click. It is not modified after it is recorded.
type ClickEvent struct {
	MapCoords    geom.Position
	ScreenCoords geom.Position
	Source       geom.PointerEvent
}

type PointerMoveEvent struct {
	MapCoords    geom.Position
	ScreenCoords geom.Position
	IsDragging   bool
	Source       geom.PointerEvent
}

// ModeProps is the context a host passes to every mode callback.
type ModeProps struct {
	Data                 geom.FeatureCollectionBuilder
	OnEdit               func(EditAction)
	LastPointerMoveEvent *PointerMoveEvent
}

type EditHandleType string

const (
	HandleExisting EditHandleType = "existing"
)

// EditHandle is a draggable point derived from a feature's coordinates.
type EditHandle struct {
	Position      geom.Position
	PositionIndex int
	FeatureIndex  int
	Type          EditHandleType
	GuideType     geom.GuideType
}

// Guides is the overlay a mode wants drawn on top of the committed data.
type Guides struct {
	TentativeFeature geom.Feature
	EditHandles      []EditHandle
}

// State of a drawing gesture.
type State int

const (
	StateIdle State = iota
	StateCenterSet
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCenterSet:
		return "center set"
	}
	return "unknown"
}
