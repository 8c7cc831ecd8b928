package field

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

var (
	ErrNoSurface      = errors.New("field: no drawing surface")
	ErrInvalidCount   = errors.New("field: particle count must be positive")
	ErrAlreadyStarted = errors.New("field: animator already initialized")
)

// FrameID identifies one pending frame request
type FrameID uint64

// Scheduler runs a callback once on the next display frame
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Viewport reports the host size and notifies when it changes.
// The returned func removes the subscription.
type Viewport interface {
	ViewportSize() (w, h int)
	OnResize(fn func()) (unsubscribe func())
}

type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTornDown:
		return "torn-down"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Animator owns a particle set and drives it one frame at a time.
// All methods must be called from the scheduler's goroutine.
type Animator struct {
	viewport Viewport
	sched    Scheduler
	settings Settings
	rng      *rand.Rand

	state       State
	surface     Surface
	particles   []Particle
	pending     FrameID
	hasPending  bool
	unsubscribe func()

	frames uint64
	links  int
}

type Option func(*Animator)

// WithRand replaces the time-seeded random source
func WithRand(rng *rand.Rand) Option {
	return func(a *Animator) {
		a.rng = rng
	}
}

func NewAnimator(v Viewport, sched Scheduler, s Settings, opts ...Option) *Animator {
	seed := uint64(time.Now().UnixNano())
	a := &Animator{
		viewport: v,
		sched:    sched,
		settings: s,
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Initialize sizes surface to the viewport, seeds count particles, draws the
// first frame and starts the frame loop. On error nothing is created or
// scheduled.
func (a *Animator) Initialize(surface Surface, count int) error {
	if a.state != StateUninitialized {
		return ErrAlreadyStarted
	}
	if surface == nil {
		log.Println("Animator.Initialize:", ErrNoSurface)
		return ErrNoSurface
	}
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	w, h := a.viewport.ViewportSize()
	if w <= 0 || h <= 0 {
		err := fmt.Errorf("%w: viewport is %dx%d", ErrNoSurface, w, h)
		log.Println("Animator.Initialize:", err)
		return err
	}
	surface.SetSize(w, h)

	a.surface = surface
	a.particles = Seed(a.rng, a.settings, a.bounds(), count)
	a.unsubscribe = a.viewport.OnResize(a.OnResize)
	a.state = StateRunning
	a.Start()
	a.Step()
	return nil
}

// OnResize copies the viewport size onto the surface. Particles are left
// where they are; ones outside the new bounds wrap on their next update.
func (a *Animator) OnResize() {
	if a.state != StateRunning {
		return
	}
	w, h := a.viewport.ViewportSize()
	a.surface.SetSize(w, h)
}

// Start schedules the next frame if none is pending
func (a *Animator) Start() {
	if a.state != StateRunning || a.hasPending {
		return
	}
	a.pending = a.sched.RequestFrame(a.frame)
	a.hasPending = true
}

// Stop cancels the pending frame. Start resumes the loop.
func (a *Animator) Stop() {
	if !a.hasPending {
		return
	}
	a.sched.CancelFrame(a.pending)
	a.hasPending = false
}

func (a *Animator) frame() {
	a.hasPending = false
	if a.state != StateRunning {
		return
	}
	a.Start()
	a.Step()
}

// Step advances every particle once and redraws the surface.
// It does nothing unless the animator is running.
func (a *Animator) Step() {
	if a.state != StateRunning {
		return
	}
	UpdateAll(a.particles, a.bounds())
	a.links = Render(a.particles, a.surface, a.settings)
	a.frames++
}

// Teardown stops the loop, drops the resize subscription and discards the
// particles. Later calls do nothing.
func (a *Animator) Teardown() {
	if a.state == StateTornDown {
		return
	}
	a.Stop()
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.particles = nil
	a.state = StateTornDown
}

func (a *Animator) bounds() Bounds {
	w, h := a.surface.Size()
	return Bounds{W: float64(w), H: float64(h)}
}

func (a *Animator) State() State { return a.state }

// Particles returns a copy of the current particle set
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

func (a *Animator) Count() int { return len(a.particles) }

// Frames counts completed steps
func (a *Animator) Frames() uint64 { return a.frames }

// Links is the number of connections drawn by the last step
func (a *Animator) Links() int { return a.links }

func (a *Animator) Settings() Settings { return a.settings }
