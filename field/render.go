package field

import (
	"image/color"
	"math"

	"particle-field/graph"
)

// Surface is the 2D target a field draws on. Sizes are in pixels.
type Surface interface {
	Size() (w, h int)
	SetSize(w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Opacity is the connection alpha for two particles dist apart. It falls
// linearly from maxAlpha at 0 to 0 at threshold and stays 0 beyond.
func Opacity(dist, threshold, maxAlpha float64) float64 {
	if threshold <= 0 || dist >= threshold {
		return 0
	}
	if dist <= 0 {
		return maxAlpha
	}
	return maxAlpha * (1 - dist/threshold)
}

// Draw renders one particle as a filled circle
func Draw(p Particle, s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, p.Color)
}

// Render clears s and draws the particles followed by their connections.
// It returns the number of connections drawn.
func Render(particles []Particle, s Surface, set Settings) int {
	s.Clear()
	for _, p := range particles {
		Draw(p, s)
	}

	nodes := make([]graph.Node, len(particles))
	for i, p := range particles {
		nodes[i] = graph.Node{X: p.X, Y: p.Y}
	}

	edges := graph.Connections(nodes, set.ConnectDistance)
	for _, e := range edges {
		a, b := particles[e.From], particles[e.To]
		alpha := Opacity(e.Dist, set.ConnectDistance, set.MaxLineAlpha)
		s.StrokeLine(a.X, a.Y, b.X, b.Y, set.LineWidth, lineColor(set.LineColor, alpha))
	}
	return len(edges)
}

func lineColor(base color.NRGBA, alpha float64) color.NRGBA {
	base.A = uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 0xff))
	return base
}
