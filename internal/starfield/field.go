package starfield

import (
	"image/color"
	"math"
	"math/rand/v2"
)

const (
	// Margin is how far a particle may drift past an edge before it wraps.
	Margin = 10

	pointerPull = 0.0008

	minRadius     = 0.3
	radiusSpan    = 1.6
	maxSpeed      = 0.1
	minBrightness = 0.2
	brightSpan    = 0.6

	twinkleRate  = 0.02
	twinkleFloor = 0.8
	twinkleDepth = 0.2
)

var (
	GradientTop    = color.NRGBA{R: 10, G: 30, B: 60, A: 89}
	GradientBottom = color.NRGBA{R: 2, G: 6, B: 12, A: 153}
)

// Particle is a single star.
type Particle struct {
	X, Y           float64
	VX, VY         float64
	Radius         float64
	BaseBrightness float64
}

// Config is supplied once when a field is created.
type Config struct {
	Count   int
	Twinkle bool
}

// Field owns the particles and render state of one surface.
type Field struct {
	cfg Config
	rng *rand.Rand

	width, height int
	particles     []Particle

	pointerX, pointerY float64
	frame              int

	events queue
}

// NewField seeds cfg.Count particles across a width x height surface. A nil
// rng falls back to a randomly seeded source.
func NewField(width, height int, cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{
		cfg:      cfg,
		rng:      rng,
		pointerX: float64(width) / 2,
		pointerY: float64(height) / 2,
	}
	f.Resize(width, height)
	return f
}

// Resize drops every particle and spawns a fresh set at the new dimensions.
func (f *Field) Resize(width, height int) {
	f.width, f.height = width, height
	n := max(f.cfg.Count, 0)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = f.spawn()
	}
}

func (f *Field) spawn() Particle {
	return Particle{
		X:              f.rng.Float64() * float64(f.width),
		Y:              f.rng.Float64() * float64(f.height),
		Radius:         f.rng.Float64()*radiusSpan + minRadius,
		VX:             (f.rng.Float64() - 0.5) * 2 * maxSpeed,
		VY:             (f.rng.Float64() - 0.5) * 2 * maxSpeed,
		BaseBrightness: f.rng.Float64()*brightSpan + minBrightness,
	}
}

// Post queues an input event for the next frame. Safe for concurrent use.
func (f *Field) Post(ev Event) {
	f.events.push(ev)
}

// SetPointer moves the attraction point immediately.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

func (f *Field) Pointer() (x, y float64) { return f.pointerX, f.pointerY }

func (f *Field) Size() (width, height int) { return f.width, f.height }

func (f *Field) FrameCount() int { return f.frame }

func (f *Field) Config() Config { return f.cfg }

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Brightness is the alpha particle i is drawn with on the current frame.
func (f *Field) Brightness(i int) float64 {
	base := f.particles[i].BaseBrightness
	if !f.cfg.Twinkle {
		return base
	}
	return base * (twinkleFloor + twinkleDepth*math.Sin(float64(f.frame+i)*twinkleRate))
}

// Frame applies pending events, advances every particle one step and draws
// the result onto s.
func (f *Field) Frame(s Surface) {
	for _, ev := range f.events.drain() {
		f.apply(ev)
	}

	s.Clear()
	s.FillGradient(GradientTop, GradientBottom)

	for i := range f.particles {
		f.step(i)
		p := &f.particles[i]
		a := uint8(math.Round(clamp01(f.Brightness(i)) * 255))
		s.FillCircle(p.X, p.Y, p.Radius, color.NRGBA{R: 255, G: 255, B: 255, A: a})
	}

	f.frame++

	if p, ok := s.(Presenter); ok {
		p.Present()
	}
}

func (f *Field) apply(ev Event) {
	switch ev.Kind {
	case PointerMoved:
		f.SetPointer(ev.X, ev.Y)
	case Resized:
		f.Resize(ev.Width, ev.Height)
	}
}

func (f *Field) step(i int) {
	p := &f.particles[i]
	p.X += p.VX + (f.pointerX-p.X)*pointerPull
	p.Y += p.VY + (f.pointerY-p.Y)*pointerPull
	f.wrap(p)
}

func (f *Field) wrap(p *Particle) {
	w, h := float64(f.width), float64(f.height)
	if p.X < -Margin {
		p.X = w + Margin
	}
	if p.X > w+Margin {
		p.X = -Margin
	}
	if p.Y < -Margin {
		p.Y = h + Margin
	}
	if p.Y > h+Margin {
		p.Y = -Margin
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
