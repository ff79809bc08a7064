package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"geodraw/internal/collection"
	"geodraw/internal/editmode"
	"geodraw/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data geom.FeatureCollectionBuilder
	bbox geom.BBox

	// draw mode
	mode     *editmode.DrawCircleMode
	lastMove *editmode.PointerMoveEvent
	units    geom.Units
	logger   *slog.Logger

	// last rendered map size
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
	hoverHandle *geom.PickedElement

	// feature table
	showAttrs bool
	tbl       table.Model
}

type Option func(*Model)

func WithUnits(u geom.Units) Option {
	return func(m *Model) {
		if u != "" {
			m.units = u
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBounds sets the viewport used until data is loaded.
func WithBounds(bb geom.BBox) Option {
	return func(m *Model) {
		if bb.Valid() {
			m.bbox = bb
		}
	}
}

func New(opts ...Option) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "geodraw ready: click to set a circle center",
		data:        collection.New(geom.FeatureCollection{}),
		bbox:        geom.BBox{MinX: -180, MinY: -85, MaxX: 180, MaxY: 85},
		units:       geom.Kilometers,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&m)
	}
	m.mode = editmode.NewDrawCircleMode(
		editmode.WithUnits(m.units),
		editmode.WithLogger(m.logger),
	)
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, ...). Press Enter to add; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts ...Option) Model {
	m := New(opts...)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Collection returns the committed features.
func (m Model) Collection() geom.FeatureCollection {
	return m.data.GetObject()
}

func (m Model) Status() string { return m.status }

func (m *Model) modeProps() editmode.ModeProps {
	return editmode.ModeProps{
		Data:                 m.data,
		OnEdit:               m.applyEdit,
		LastPointerMoveEvent: m.lastMove,
	}
}

func (m *Model) applyEdit(a editmode.EditAction) {
	switch a.EditType {
	case editmode.EditAddFeature:
		m.data = collection.New(a.UpdatedData)
		if n := len(a.UpdatedData.Features); n > 0 {
			last := a.UpdatedData.Features[n-1]
			m.status = fmt.Sprintf("added %s %s  features=%d", last.RenderType(), shortID(last.ID()), n)
		}
		m.logger.Info("feature added", "features", len(a.UpdatedData.Features))
		if m.showAttrs {
			m.refreshAttrs()
		}
	}
}

func shortID(id string) string {
	return lo.Ellipsis(id, 11)
}
