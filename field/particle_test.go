package field

import (
	"math"
	"math/rand/v2"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSeedRanges(t *testing.T) {
	s := DefaultSettings()
	b := Bounds{W: 800, H: 600}
	particles := Seed(testRand(), s, b, 500)

	if len(particles) != 500 {
		t.Fatalf("Expected 500 particles, got %d", len(particles))
	}
	for i, p := range particles {
		if p.X < 0 || p.X >= b.W || p.Y < 0 || p.Y >= b.H {
			t.Errorf("Particle %d seeded out of bounds: (%v, %v)", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Errorf("Particle %d velocity out of range: (%v, %v)", i, p.VX, p.VY)
		}
		if p.Radius < 0.5 || p.Radius > 2.5 {
			t.Errorf("Particle %d radius out of range: %v", i, p.Radius)
		}
		if p.Color.A != 0xff {
			t.Errorf("Particle %d color not opaque: %v", i, p.Color)
		}
	}
}

func TestSeedColorBand(t *testing.T) {
	particles := Seed(testRand(), DefaultSettings(), Bounds{W: 100, H: 100}, 200)
	for i, p := range particles {
		c, _ := colorful.MakeColor(p.Color)
		h, s, l := c.Hsl()
		// 8-bit rounding moves hue and lightness slightly
		if h < 238 || h > 302 {
			t.Errorf("Particle %d hue %v outside blue-violet band", i, h)
		}
		if math.Abs(s-0.7) > 0.05 {
			t.Errorf("Particle %d saturation %v, want ~0.7", i, s)
		}
		if l < 0.59 || l > 0.91 {
			t.Errorf("Particle %d lightness %v outside [0.6, 0.9]", i, l)
		}
	}
}

func TestUpdateWrapsHighToZero(t *testing.T) {
	p := Particle{X: 799.9, Y: 300, VX: 0.5}
	got := Update(p, Bounds{W: 800, H: 600})
	if got.X != 0 || got.Y != 300 {
		t.Errorf("Expected (0, 300), got (%v, %v)", got.X, got.Y)
	}
}

func TestUpdateWrapsLowInsideBound(t *testing.T) {
	p := Particle{X: 0.1, Y: 0.1, VX: -0.2, VY: -0.2}
	got := Update(p, Bounds{W: 800, H: 600})
	if got.X >= 800 || got.X < 799.99 {
		t.Errorf("Expected x just below 800, got %v", got.X)
	}
	if got.Y >= 600 || got.Y < 599.99 {
		t.Errorf("Expected y just below 600, got %v", got.Y)
	}
}

func TestUpdateExactBoundWraps(t *testing.T) {
	p := Particle{X: 799.75, Y: 10, VX: 0.25}
	got := Update(p, Bounds{W: 800, H: 600})
	if got.X != 0 {
		t.Errorf("Expected landing on the bound to wrap to 0, got %v", got.X)
	}
}

func TestUpdateKeepsImmutableFields(t *testing.T) {
	particles := Seed(testRand(), DefaultSettings(), Bounds{W: 300, H: 200}, 20)
	before := make([]Particle, len(particles))
	copy(before, particles)

	for i := 0; i < 5000; i++ {
		UpdateAll(particles, Bounds{W: 300, H: 200})
	}

	for i := range particles {
		a, b := before[i], particles[i]
		if a.VX != b.VX || a.VY != b.VY || a.Radius != b.Radius || a.Color != b.Color {
			t.Errorf("Particle %d changed immutable fields: %+v -> %+v", i, a, b)
		}
		if b.X < 0 || b.X >= 300 || b.Y < 0 || b.Y >= 200 {
			t.Errorf("Particle %d escaped bounds: (%v, %v)", i, b.X, b.Y)
		}
	}
}

func TestUpdateZeroBounds(t *testing.T) {
	got := Update(Particle{X: 0, Y: 0, VX: -0.1, VY: 0.1}, Bounds{})
	if got.X != 0 || got.Y != 0 {
		t.Errorf("Expected (0, 0) on empty bounds, got (%v, %v)", got.X, got.Y)
	}
}
