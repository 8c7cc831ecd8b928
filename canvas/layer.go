package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer composites the field image behind page content: the background is
// filled first, then the field at reduced opacity.
type Layer struct {
	Background color.Color
	Opacity    float32
}

// DrawBackgroundLayer fills screen and draws src over it at l.Opacity
func (l Layer) DrawBackgroundLayer(screen, src *ebiten.Image) {
	screen.Fill(l.Background)
	if src == nil || l.Opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(l.Opacity)
	screen.DrawImage(src, op)
}
