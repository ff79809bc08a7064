package geom

import (
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// ElementData exposes the data attributes of the element under the pointer.
// Hosts implement it for whatever their UI toolkit uses as a hit target.
type ElementData interface {
	DataType() string
	DataIndex() string
	DataFeatureIndex() string
}

// ScreenPoint is a pointer location in host screen units.
type ScreenPoint struct {
	X float64
	Y float64
}

// PointerEvent is the raw device event a host hands to the editor.
type PointerEvent struct {
	OffsetCenter ScreenPoint
	// Target is nil when the pointer is not over a tagged element.
	Target ElementData
}

// PickedObject identifies the rendered element an event landed on.
// Index and FeatureIndex are nil when the attribute is not numeric.
type PickedObject struct {
	Type         string
	Index        *int
	FeatureIndex *int
}

type PickedElement struct {
	Object PickedObject
	// Index is the raw attribute value.
	Index string
}

// ParseEventElement reads the picked element's attributes off evt. It returns
// nil when the event has no target or the target carries no type.
func ParseEventElement(evt PointerEvent) *PickedElement {
	elem := evt.Target
	if elem == nil || elem.DataType() == "" {
		return nil
	}
	index := elem.DataIndex()
	return &PickedElement{
		Object: PickedObject{
			Type:         elem.DataType(),
			Index:        numericIndex(index),
			FeatureIndex: numericIndex(elem.DataFeatureIndex()),
		},
		Index: index,
	}
}

// numericIndex returns nil unless s holds a whole number in [0, MaxInt32].
func numericIndex(s string) *int {
	if !IsNumeric(s) {
		return nil
	}
	f := cast.ToFloat64(strings.TrimSpace(s))
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return nil
	}
	return lo.ToPtr(int(f))
}

// GetScreenCoords returns the event's screen location as a position.
func GetScreenCoords(evt PointerEvent) Position {
	return Position{evt.OffsetCenter.X, evt.OffsetCenter.Y}
}
