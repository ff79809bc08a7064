package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout returns the map origin and size in cells. View and Update must agree on it.
func (m Model) layout() (originX, originY, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	w = contentWidth - sw - 1
	if w < 10 {
		w = 10
	}
	originX = sw
	if m.showSidebar {
		originX++
	}
	return originX, headerHeight, w, contentHeight
}
