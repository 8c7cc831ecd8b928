package field

import (
	"image/color"
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Bounds is the wraparound area, normally the surface size in pixels
type Bounds struct {
	W, H float64
}

// Particle is a single point of the field. Only X and Y change after Seed.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.NRGBA
}

// Seed creates count particles placed uniformly inside b
func Seed(rng *rand.Rand, s Settings, b Bounds, count int) []Particle {
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		particles = append(particles, Particle{
			X:      rng.Float64() * b.W,
			Y:      rng.Float64() * b.H,
			VX:     between(rng, -s.MaxSpeed, s.MaxSpeed),
			VY:     between(rng, -s.MaxSpeed, s.MaxSpeed),
			Radius: between(rng, s.MinRadius, s.MaxRadius),
			Color:  particleColor(rng, s),
		})
	}
	return particles
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func particleColor(rng *rand.Rand, s Settings) color.NRGBA {
	hue := s.HueBase + rng.Float64()*s.HueSpan
	light := between(rng, s.MinLightness, s.MaxLightness)
	r, g, b := colorful.Hsl(math.Mod(hue, 360), s.Saturation, light).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Update moves p by its velocity and wraps each axis independently.
// A coordinate at or past the high bound restarts at 0; one below 0 restarts
// just inside the high bound so the result stays in [0, bound).
func Update(p Particle, b Bounds) Particle {
	p.X = wrap(p.X+p.VX, b.W)
	p.Y = wrap(p.Y+p.VY, b.H)
	return p
}

func wrap(v, bound float64) float64 {
	if v >= bound {
		return 0
	}
	if v < 0 {
		if bound <= 0 {
			return 0
		}
		return math.Nextafter(bound, 0)
	}
	return v
}

// UpdateAll advances every particle in place
func UpdateAll(particles []Particle, b Bounds) {
	for i := range particles {
		particles[i] = Update(particles[i], b)
	}
}
