package render

import (
	"math"

	"github.com/lixenwraith/cell-osmosis/constants"
	"github.com/lixenwraith/cell-osmosis/engine"
)

// Viewport maps the fixed world onto a terminal grid of Cols x Rows cells
type Viewport struct {
	Cols, Rows int
}

// CellSize returns the world extent of one terminal cell
func (v Viewport) CellSize() (w, h float64) {
	return constants.WorldWidth / float64(max(v.Cols, 1)), constants.WorldHeight / float64(max(v.Rows, 1))
}

// ToCell returns the cell containing the world point
func (v Viewport) ToCell(x, y float64) (col, row int) {
	w, h := v.CellSize()
	return int(math.Floor(x / w)), int(math.Floor(y / h))
}

// ToWorld returns the world point at the centre of the cell
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	w, h := v.CellSize()
	return (float64(col) + 0.5) * w, (float64(row) + 0.5) * h
}

// CellBounds returns the world rectangle covered by the cell
func (v Viewport) CellBounds(col, row int) (x0, y0, x1, y1 float64) {
	w, h := v.CellSize()
	x0, y0 = float64(col)*w, float64(row)*h
	return x0, y0, x0 + w, y0 + h
}

// InBounds reports whether the cell exists on the grid
func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// PressPoint returns the world point a press on the cell stands for
// A cell overlapping target maps to the middle of the overlap, so every visibly covered cell hits it;
// other cells map to their centre
func (v Viewport) PressPoint(col, row int, target engine.Rect) (x, y float64) {
	x0, y0, x1, y1 := v.CellBounds(col, row)
	ix0, ix1 := math.Max(x0, target.X), math.Min(x1, target.X+target.W)
	iy0, iy1 := math.Max(y0, target.Y), math.Min(y1, target.Y+target.H)
	if ix0 < ix1 && iy0 < iy1 {
		return (ix0 + ix1) / 2, (iy0 + iy1) / 2
	}
	return v.ToWorld(col, row)
}
