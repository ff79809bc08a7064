package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"geodraw/internal/geom"
)

// refreshAttrs rebuilds the feature table from the committed collection.
func (m *Model) refreshAttrs() {
	fc := m.data.GetObject()
	if len(fc.Features) == 0 {
		m.showAttrs = false
		m.status = "no features yet"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 12},
		{Title: "type", Width: 10},
		{Title: "vertices", Width: 8},
		{Title: "center", Width: 22},
		{Title: "radius", Width: 12},
	}
	rows := make([]table.Row, 0, len(fc.Features))
	for i := range fc.Features {
		f := &fc.Features[i]
		center, radius := "", ""
		if p, ok := f.Properties.(geom.CircleProperties); ok && p.CenterCoordinates != nil {
			c := *p.CenterCoordinates
			center = fmt.Sprintf("%.5f %.5f", c[0], c[1])
			if ring := geom.GetFeatureCoordinates(f); len(ring) > 0 {
				radius = fmt.Sprintf("%.3f %s", geom.Distance(c, ring[0], m.units), m.units)
			}
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			shortID(f.ID()),
			string(f.RenderType()),
			strconv.Itoa(len(geom.GetFeatureCoordinates(f))),
			center,
			radius,
		})
	}
	// clear rows first so the old rows never meet the new columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
