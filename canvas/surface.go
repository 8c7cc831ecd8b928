package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws a field onto an offscreen ebiten image sized to the window
type Surface struct {
	img  *ebiten.Image
	w, h int
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

// SetSize replaces the backing image when the size changes
func (s *Surface) SetSize(w, h int) {
	if w == s.w && h == s.h && s.img != nil {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.w, s.h = w, h
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
}

func (s *Surface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// Image is the offscreen target, nil while the surface has no area
func (s *Surface) Image() *ebiten.Image {
	return s.img
}
