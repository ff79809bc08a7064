package editmode

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/samber/lo"

	"geodraw/internal/geom"
)

// DrawCircleMode draws a circle with two clicks: the first sets the center,
// the second the radius. Between them every pointer move replaces the
// tentative circle.
//
//	idle --click--> center set --move--> center set --click--> idle (committed)
type DrawCircleMode struct {
	BaseMode

	newID  func() string
	units  geom.Units
	logger *slog.Logger
}

type Option func(*DrawCircleMode)

func WithLogger(l *slog.Logger) Option {
	return func(m *DrawCircleMode) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithIDGenerator replaces the version-1 UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *DrawCircleMode) {
		if fn != nil {
			m.newID = fn
		}
	}
}

func WithUnits(u geom.Units) Option {
	return func(m *DrawCircleMode) {
		if u != "" {
			m.units = u
		}
	}
}

func NewDrawCircleMode(opts ...Option) *DrawCircleMode {
	m := &DrawCircleMode{
		newID:  newTimeID,
		units:  geom.Kilometers,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func newTimeID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// State reports where the gesture stands.
func (m *DrawCircleMode) State() State {
	if len(m.clickSequence) == 0 {
		return StateIdle
	}
	return StateCenterSet
}

// HandlePointerMove recomputes the tentative circle from the recorded center
// to the pointer. It does nothing until a center has been clicked.
func (m *DrawCircleMode) HandlePointerMove(event PointerMoveEvent, props ModeProps) {
	if len(m.clickSequence) < 1 {
		return
	}
	f := m.circle(m.clickSequence[0].MapCoords, event.MapCoords, geom.GuideTentative)
	m.setTentativeFeature(&f)
}

// HandleClick records a click. The second click of a gesture commits the
// circle through props.OnEdit and returns the mode to idle.
func (m *DrawCircleMode) HandleClick(event ClickEvent, props ModeProps) {
	if len(m.clickSequence) >= 2 {
		// only reachable if the sequence was not reset after a commit
		m.logger.Warn("draw circle: click sequence overflow, restarting gesture",
			"clicks", len(m.clickSequence))
		m.Reset()
	}
	m.clickSequence = append(m.clickSequence, event)
	if len(m.clickSequence) == 1 {
		m.logger.Debug("draw circle: center set",
			"lon", event.MapCoords[0], "lat", event.MapCoords[1])
		return
	}

	center := m.clickSequence[0].MapCoords
	tentative := m.tentativeFeature
	if tentative == nil {
		// two clicks without a move in between
		f := m.circle(center, event.MapCoords, geom.GuideTentative)
		tentative = &f
	}
	coordinates := geom.GetFeatureCoordinates(tentative)

	feature := geom.Feature{
		Properties: geom.CircleProperties{
			BaseProperties: geom.BaseProperties{
				ID:         tentative.ID(),
				RenderType: geom.RenderCircle,
			},
			CenterCoordinates: lo.ToPtr(center),
		},
		Geometry: geom.Geometry{
			Type:        geom.GeometryCircle,
			Coordinates: ringOf(coordinates),
		},
	}

	m.Reset()

	if props.Data == nil {
		m.logger.Warn("draw circle: no data collection, dropping feature", "id", feature.ID())
		return
	}
	updated := props.Data.AddFeature(feature).GetObject()
	m.logger.Debug("draw circle: feature added",
		"id", feature.ID(), "features", len(updated.Features))
	if props.OnEdit != nil {
		props.OnEdit(EditAction{
			EditType:    EditAddFeature,
			UpdatedData: updated,
			EditContext: nil,
		})
	}
}

// GetGuides returns the tentative circle tagged as an edit-handle guide
// together with its handles, or nil when no gesture is in progress. It does
// not modify the mode.
func (m *DrawCircleMode) GetGuides(props ModeProps) *Guides {
	coordinates := geom.GetFeatureCoordinates(m.tentativeFeature)
	if coordinates == nil {
		return nil
	}
	feature := geom.Feature{
		Properties: geom.CircleProperties{
			BaseProperties: geom.BaseProperties{
				ID:         m.newID(),
				RenderType: geom.RenderCircle,
				GuideType:  geom.GuideEditHandle,
			},
		},
		Geometry: geom.Geometry{
			Type:        geom.GeometryCircle,
			Coordinates: ringOf(coordinates),
		},
	}
	return &Guides{
		TentativeFeature: feature,
		EditHandles:      m.GetEditHandlesFromFeature(feature, 0),
	}
}

func (m *DrawCircleMode) circle(center, edge geom.Position, guide geom.GuideType) geom.Feature {
	props := geom.CircleProperties{
		BaseProperties: geom.BaseProperties{
			ID:         m.newID(),
			RenderType: geom.RenderCircle,
			GuideType:  guide,
		},
	}
	return geom.CreateCircle(center, edge, props, geom.WithUnits(m.units))
}

func ringOf(coordinates []geom.Position) orb.Ring {
	out := make(orb.Ring, len(coordinates))
	copy(out, coordinates)
	return out
}
