package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geodraw/internal/collection"
	"geodraw/internal/editmode"
	"geodraw/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			_, _, _, h := m.layout()
			m.l.SetSize(sidebarWidth-2, h-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs {
			switch msg.String() {
			case "up", "down", "k", "j", "pgup", "pgdown":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.mode.State() != editmode.StateIdle {
				m.mode.Reset()
				m.status = "circle aborted"
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "f":
			if bb, ok := m.data.GetObject().BBox(); ok && bb.Valid() {
				m.bbox = bb
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.status = "fit to data"
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				_, _, _, h := m.layout()
				m.l.SetSize(sidebarWidth-2, h-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.status = "draw mode"
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		fc, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		for _, f := range fc.Features {
			m.data = m.data.AddFeature(f)
		}
		m.status = fmt.Sprintf("added %d feature(s) from WKT", len(fc.Features))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handleMouse turns terminal mouse input over the map into draw-mode pointer events.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.pasteMode || m.showAttrs {
		return
	}
	ox, oy, w, h := m.layout()
	cx, cy := msg.X, msg.Y
	if cx < ox || cx >= ox+w || cy < oy || cy >= oy+h {
		m.hovering = false
		m.hoverHasGeo = false
		m.hoverHandle = nil
		return
	}
	m.hovering = true
	m.hoverCellX = cx - ox
	m.hoverCellY = cy - oy
	lon, lat, ok := m.cellToLonLat(m.hoverCellX, m.hoverCellY, w, h)
	m.hoverHasGeo = ok
	if !ok {
		return
	}
	m.hoverLon, m.hoverLat = lon, lat

	src := geom.PointerEvent{
		OffsetCenter: geom.ScreenPoint{X: float64(m.hoverCellX), Y: float64(m.hoverCellY)},
		Target:       m.elementAt(m.hoverCellX, m.hoverCellY, w, h),
	}
	m.hoverHandle = geom.ParseEventElement(src)
	mapCoords := geom.Position{lon, lat}
	screen := geom.GetScreenCoords(src)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.mode.HandleClick(editmode.ClickEvent{
			MapCoords:    mapCoords,
			ScreenCoords: screen,
			Source:       src,
		}, m.modeProps())
		if m.mode.State() == editmode.StateCenterSet {
			m.status = fmt.Sprintf("center %.5f %.5f: click again to set the radius (esc aborts)", lon, lat)
		}
	case msg.Action == tea.MouseActionMotion:
		ev := editmode.PointerMoveEvent{
			MapCoords:    mapCoords,
			ScreenCoords: screen,
			IsDragging:   msg.Button != tea.MouseButtonNone,
			Source:       src,
		}
		m.lastMove = &ev
		m.mode.HandlePointerMove(ev, m.modeProps())
		if seq := m.mode.ClickSequence(); len(seq) > 0 {
			r := geom.CircleRadius(seq[0].MapCoords, mapCoords, m.units)
			m.status = fmt.Sprintf("radius %.3f %s", r, m.units)
		}
	}
}

// loadPath replaces the collection with the file's features.
func (m *Model) loadPath(p string) {
	m.selPath = p
	fc, err := geom.LoadFeatureCollection(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.logger.Warn("load failed", "path", p, "err", err)
		return
	}
	m.data = collection.New(fc)
	m.mode.Reset()
	if bb, ok := fc.BBox(); ok && bb.Valid() {
		m.bbox = bb
	}
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = fmt.Sprintf("loaded: %s  features=%d", baseName(p), len(fc.Features))
	m.logger.Info("loaded", "path", p, "features", len(fc.Features))
	if m.showAttrs {
		m.refreshAttrs()
	}
}
