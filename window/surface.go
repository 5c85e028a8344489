package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/cell-osmosis/engine"
	"github.com/lixenwraith/cell-osmosis/render"
)

// Surface draws world units 1:1 onto an ebiten image
type Surface struct {
	dst *ebiten.Image
}

func (s *Surface) Clear(bg colorful.Color) {
	s.dst.Fill(render.ToRGBA(bg))
}

func (s *Surface) FillCircle(cx, cy, r float64, c colorful.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), render.ToRGBA(c), true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c colorful.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), render.ToRGBA(c), true)
}

func (s *Surface) FillRect(rect engine.Rect, c colorful.Color) {
	vector.DrawFilledRect(s.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), render.ToRGBA(c), false)
}

func (s *Surface) StrokeRect(rect engine.Rect, width float64, c colorful.Color) {
	vector.StrokeRect(s.dst, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), float32(width), render.ToRGBA(c), false)
}

// Text draws with the top-left at (x, y); text.Draw positions by baseline
func (s *Surface) Text(x, y float64, str string, c colorful.Color) {
	face := basicfont.Face7x13
	text.Draw(s.dst, str, face, int(x), int(y)+face.Ascent, render.ToRGBA(c))
}
