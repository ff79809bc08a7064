package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"geodraw/internal/editmode"
	"geodraw/internal/geom"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(p geom.Position, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (p[0] - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (p[1] - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(h*4-1)) + m.offsetY*4
	return sx, sy, true
}

// screenCell maps lon/lat to the terminal cell it falls in.
func (m Model) screenCell(p geom.Position, w, h int) (int, int, bool) {
	mx, my, ok := m.screenXYMicro(p, w, h)
	if !ok || mx < 0 || my < 0 {
		return 0, 0, false
	}
	cx, cy := mx/2, my/4
	if cx >= w || cy >= h {
		return 0, 0, false
	}
	return cx, cy, true
}

func (m Model) project(pts []geom.Position, w, h int) [][2]int {
	out := make([][2]int, 0, len(pts))
	for _, p := range pts {
		mx, my, ok := m.screenXYMicro(p, w, h)
		if !ok {
			continue
		}
		out = append(out, [2]int{mx, my})
	}
	return out
}

// guides returns the draw mode's overlay. Rendering calls it every frame.
func (m Model) guides() *editmode.Guides {
	return m.mode.GetGuides(m.modeProps())
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	for _, f := range m.data.GetObject().Features {
		m.drawFeature(br, f, w, h)
	}
	g := m.guides()
	if g != nil {
		m.drawFeature(br, g.TentativeFeature, w, h)
	}
	cells := br.toCells()

	if seq := m.mode.ClickSequence(); len(seq) > 0 {
		if cx, cy, ok := m.screenCell(seq[0].MapCoords, w, h); ok {
			cells[cy][cx] = centerStyle.Render("+")
		}
	}
	if g != nil {
		for _, eh := range g.EditHandles {
			cx, cy, ok := m.screenCell(eh.Position, w, h)
			if !ok {
				continue
			}
			style := handleStyle
			if m.hoverHandle != nil && m.hoverHandle.Object.Index != nil && *m.hoverHandle.Object.Index == eh.PositionIndex {
				style = hotStyle
			}
			cells[cy][cx] = style.Render("◆")
		}
	}

	lines := make([]string, len(cells))
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) drawFeature(br *brailleBuf, f geom.Feature, w, h int) {
	switch c := f.Geometry.Coordinates.(type) {
	case orb.Point:
		if mx, my, ok := m.screenXYMicro(c, w, h); ok {
			br.setPixel(mx, my)
		}
	case orb.MultiPoint:
		for _, p := range m.project(c, w, h) {
			br.setPixel(p[0], p[1])
		}
	case orb.LineString:
		br.drawPath(m.project(c, w, h), false)
	case orb.Ring:
		br.drawPath(m.project(c, w, h), true)
	case orb.Polygon:
		for i, ring := range c {
			pts := m.project(ring, w, h)
			if i == 0 && f.RenderType() == geom.RenderPolygon {
				fillRing(br, pts, h*4)
			}
			br.drawPath(pts, true)
		}
	}
}

// fillRing fills a ring using the even-odd rule per micro scanline.
func fillRing(br *brailleBuf, ring [][2]int, hMic int) {
	if len(ring) < 3 {
		return
	}
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
}

// handleTarget tags the cell of an edit handle so pointer events over it can
// be picked.
type handleTarget struct {
	index        int
	featureIndex int
}

func (t handleTarget) DataType() string         { return string(geom.GuideEditHandle) }
func (t handleTarget) DataIndex() string        { return strconv.Itoa(t.index) }
func (t handleTarget) DataFeatureIndex() string { return strconv.Itoa(t.featureIndex) }

// elementAt returns the edit handle drawn in cell (cx, cy), if any.
func (m Model) elementAt(cx, cy, w, h int) geom.ElementData {
	g := m.guides()
	if g == nil {
		return nil
	}
	for _, eh := range g.EditHandles {
		hx, hy, ok := m.screenCell(eh.Position, w, h)
		if ok && hx == cx && hy == cy {
			return handleTarget{index: eh.PositionIndex, featureIndex: eh.FeatureIndex}
		}
	}
	return nil
}
