package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cell-osmosis/engine"
)

const (
	runeFill     = '█'
	runeParticle = '●'
	runeMembrane = '•'
)

// TerminalSurface draws the world onto a tcell screen, scaled to the current terminal size
type TerminalSurface struct {
	screen   tcell.Screen
	viewport Viewport
	bg       tcell.Color

	// Last row written by Text per starting column, cleared each frame
	textRows map[int]int
}

// NewTerminalSurface creates a surface over screen sized to its current dimensions
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	ts := &TerminalSurface{
		screen:   screen,
		bg:       ToTcell(ColorBackground),
		textRows: make(map[int]int),
	}
	ts.Resize()
	return ts
}

// Resize re-reads the screen size; call on tcell.EventResize
func (ts *TerminalSurface) Resize() {
	cols, rows := ts.screen.Size()
	ts.viewport = Viewport{Cols: cols, Rows: rows}
}

// Viewport returns the current world to grid mapping
func (ts *TerminalSurface) Viewport() Viewport {
	return ts.viewport
}

// Show flushes the frame to the terminal
func (ts *TerminalSurface) Show() {
	ts.screen.Show()
}

func (ts *TerminalSurface) Clear(bg colorful.Color) {
	ts.bg = ToTcell(bg)
	clear(ts.textRows)
	ts.screen.Fill(' ', tcell.StyleDefault.Background(ts.bg))
}

// FillCircle fills every cell whose centre lies in the circle
// Circles smaller than a cell still mark the cell holding their centre
func (ts *TerminalSurface) FillCircle(cx, cy, r float64, c colorful.Color) {
	style := tcell.StyleDefault.Foreground(ToTcell(c)).Background(ts.bg)
	c0, r0 := ts.viewport.ToCell(cx-r, cy-r)
	c1, r1 := ts.viewport.ToCell(cx+r, cy+r)

	covered := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !ts.viewport.InBounds(col, row) {
				continue
			}
			x, y := ts.viewport.ToWorld(col, row)
			if math.Hypot(x-cx, y-cy) <= r {
				ts.screen.SetContent(col, row, runeFill, nil, style)
				covered = true
			}
		}
	}
	if !covered {
		col, row := ts.viewport.ToCell(cx, cy)
		if ts.viewport.InBounds(col, row) {
			ts.screen.SetContent(col, row, runeParticle, nil, style)
		}
	}
}

// StrokeCircle marks every cell the circle passes through; width is below cell resolution
func (ts *TerminalSurface) StrokeCircle(cx, cy, r, width float64, c colorful.Color) {
	style := tcell.StyleDefault.Foreground(ToTcell(c)).Background(ts.bg)
	c0, r0 := ts.viewport.ToCell(cx-r, cy-r)
	c1, r1 := ts.viewport.ToCell(cx+r, cy+r)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !ts.viewport.InBounds(col, row) {
				continue
			}
			x0, y0, x1, y1 := ts.viewport.CellBounds(col, row)
			near := math.Hypot(axisGap(cx, x0, x1), axisGap(cy, y0, y1))
			far := math.Hypot(math.Max(math.Abs(cx-x0), math.Abs(cx-x1)), math.Max(math.Abs(cy-y0), math.Abs(cy-y1)))
			if near <= r && r <= far {
				ts.screen.SetContent(col, row, runeMembrane, nil, style)
			}
		}
	}
}

func (ts *TerminalSurface) FillRect(rect engine.Rect, c colorful.Color) {
	style := tcell.StyleDefault.Background(ToTcell(c))
	c0, r0, c1, r1 := ts.rectCells(rect)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if ts.viewport.InBounds(col, row) {
				ts.screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

// StrokeRect outlines the rectangle with box drawing runes, or brackets when it is too short for a box
func (ts *TerminalSurface) StrokeRect(rect engine.Rect, width float64, c colorful.Color) {
	fg := ToTcell(c)
	c0, r0, c1, r1 := ts.rectCells(rect)

	if r1-r0 < 2 || c1-c0 < 2 {
		for row := r0; row <= r1; row++ {
			ts.setKeepBackground(c0, row, '[', fg)
			ts.setKeepBackground(c1, row, ']', fg)
		}
		return
	}

	for col := c0 + 1; col < c1; col++ {
		ts.setKeepBackground(col, r0, tcell.RuneHLine, fg)
		ts.setKeepBackground(col, r1, tcell.RuneHLine, fg)
	}
	for row := r0 + 1; row < r1; row++ {
		ts.setKeepBackground(c0, row, tcell.RuneVLine, fg)
		ts.setKeepBackground(c1, row, tcell.RuneVLine, fg)
	}
	ts.setKeepBackground(c0, r0, tcell.RuneULCorner, fg)
	ts.setKeepBackground(c1, r0, tcell.RuneURCorner, fg)
	ts.setKeepBackground(c0, r1, tcell.RuneLLCorner, fg)
	ts.setKeepBackground(c1, r1, tcell.RuneLRCorner, fg)
}

// Text writes s left to right from the cell holding (x, y), keeping whatever background is underneath
// Lines starting in the same column within a frame never share a row: a line that would land
// on or above the previous one moves to the row below it
func (ts *TerminalSurface) Text(x, y float64, s string, c colorful.Color) {
	fg := ToTcell(c)
	col, row := ts.viewport.ToCell(x, y)
	if prev, ok := ts.textRows[col]; ok && row <= prev {
		row = prev + 1
	}
	ts.textRows[col] = row
	for _, ch := range s {
		ts.setKeepBackground(col, row, ch, fg)
		col++
	}
}

func (ts *TerminalSurface) setKeepBackground(col, row int, ch rune, fg tcell.Color) {
	if !ts.viewport.InBounds(col, row) {
		return
	}
	_, _, existing, _ := ts.screen.GetContent(col, row)
	_, bg, _ := existing.Decompose()
	ts.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// rectCells returns the inclusive cell range overlapping rect
func (ts *TerminalSurface) rectCells(rect engine.Rect) (c0, r0, c1, r1 int) {
	w, h := ts.viewport.CellSize()
	c0 = int(math.Floor(rect.X / w))
	r0 = int(math.Floor(rect.Y / h))
	c1 = int(math.Ceil((rect.X+rect.W)/w)) - 1
	r1 = int(math.Ceil((rect.Y+rect.H)/h)) - 1
	return c0, r0, max(c1, c0), max(r1, r0)
}

// axisGap is the distance from v to the interval [lo, hi], 0 when inside
func axisGap(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
