package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cell-osmosis/engine"
)

// Surface is an immediate-mode 2D canvas addressed in world units (800x600)
// Implementations map world units to their own resolution
type Surface interface {
	Clear(bg colorful.Color)
	FillCircle(cx, cy, r float64, c colorful.Color)
	StrokeCircle(cx, cy, r, width float64, c colorful.Color)
	FillRect(rect engine.Rect, c colorful.Color)
	StrokeRect(rect engine.Rect, width float64, c colorful.Color)
	// Text draws s with its top-left corner at (x, y)
	Text(x, y float64, s string, c colorful.Color)
}
