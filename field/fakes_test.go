package field

import (
	"fmt"
	"image/color"
)

type circle struct {
	X, Y, R float64
	C       color.Color
}

type line struct {
	X0, Y0, X1, Y1, Width float64
	C                     color.NRGBA
}

// recordSurface keeps the draw calls of the last frame
type recordSurface struct {
	w, h    int
	clears  int
	sizes   [][2]int
	circles []circle
	lines   []line
}

func (s *recordSurface) Size() (int, int) { return s.w, s.h }

func (s *recordSurface) SetSize(w, h int) {
	s.w, s.h = w, h
	s.sizes = append(s.sizes, [2]int{w, h})
}

func (s *recordSurface) Clear() {
	s.clears++
	s.circles = nil
	s.lines = nil
}

func (s *recordSurface) FillCircle(x, y, r float64, c color.Color) {
	s.circles = append(s.circles, circle{X: x, Y: y, R: r, C: c})
}

func (s *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	s.lines = append(s.lines, line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, C: color.NRGBAModel.Convert(c).(color.NRGBA)})
}

type fakeScheduler struct {
	next      FrameID
	pending   map[FrameID]func()
	cancelled []FrameID
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: map[FrameID]func(){}}
}

func (f *fakeScheduler) RequestFrame(fn func()) FrameID {
	f.next++
	f.pending[f.next] = fn
	return f.next
}

func (f *fakeScheduler) CancelFrame(id FrameID) {
	f.cancelled = append(f.cancelled, id)
	delete(f.pending, id)
}

// fire runs all currently pending callbacks once
func (f *fakeScheduler) fire() int {
	batch := f.pending
	f.pending = map[FrameID]func(){}
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

type fakeViewport struct {
	w, h int
	subs map[int]func()
	next int
}

func newFakeViewport(w, h int) *fakeViewport {
	return &fakeViewport{w: w, h: h, subs: map[int]func(){}}
}

func (v *fakeViewport) ViewportSize() (int, int) { return v.w, v.h }

func (v *fakeViewport) OnResize(fn func()) func() {
	v.next++
	id := v.next
	v.subs[id] = fn
	return func() { delete(v.subs, id) }
}

func (v *fakeViewport) resize(w, h int) {
	v.w, v.h = w, h
	for _, fn := range v.subs {
		fn()
	}
}

// setParticles overwrites the running set to stage an exact scenario
func (a *Animator) setParticles(ps []Particle) error {
	if a.state != StateRunning {
		return fmt.Errorf("field: set particles while %s", a.state)
	}
	if len(ps) != len(a.particles) {
		return fmt.Errorf("field: set %d particles, want %d", len(ps), len(a.particles))
	}
	copy(a.particles, ps)
	return nil
}
