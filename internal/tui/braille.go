package tui

// brailleBuf is a 2x4 dot grid per terminal cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits indexed by [column][row] within a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawPath connects consecutive micro points, closing the loop when closed is set.
func (b *brailleBuf) drawPath(pts [][2]int, closed bool) {
	for i := 1; i < len(pts); i++ {
		b.drawLineMicro(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
	if closed && len(pts) > 2 {
		last := pts[len(pts)-1]
		b.drawLineMicro(last[0], last[1], pts[0][0], pts[0][1])
	}
}

// toCells returns one string per cell so overlays can replace single cells.
func (b *brailleBuf) toCells() [][]string {
	out := make([][]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]string, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = " "
			} else {
				row[x] = string(rune(0x2800 + int(mask)))
			}
		}
		out[y] = row
	}
	return out
}
