package starfield

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
)

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

// recordSurface captures draw calls for one frame at a time.
type recordSurface struct {
	clears    int
	gradients int
	top       color.Color
	bottom    color.Color
	circles   []circle
	presents  int
}

func (s *recordSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordSurface) FillGradient(top, bottom color.Color) {
	s.gradients++
	s.top, s.bottom = top, bottom
}

func (s *recordSurface) FillCircle(x, y, r float64, c color.Color) {
	s.circles = append(s.circles, circle{x: x, y: y, r: r, c: color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (s *recordSurface) Present() { s.presents++ }

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewFieldCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 150} {
		f := NewField(640, 480, Config{Count: n}, testRand())
		if got := len(f.Particles()); got != n {
			t.Errorf("count %d: got %d particles", n, got)
		}
	}
}

func TestNewFieldNegativeCount(t *testing.T) {
	f := NewField(100, 100, Config{Count: -4}, testRand())
	if got := len(f.Particles()); got != 0 {
		t.Errorf("expected no particles, got %d", got)
	}
}

func TestSpawnRanges(t *testing.T) {
	f := NewField(300, 200, Config{Count: 500}, testRand())
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 300 || p.Y < 0 || p.Y >= 200 {
			t.Fatalf("particle %d position out of range: (%f, %f)", i, p.X, p.Y)
		}
		if p.Radius < 0.3 || p.Radius > 1.9 {
			t.Fatalf("particle %d radius out of range: %f", i, p.Radius)
		}
		if math.Abs(p.VX) > 0.1 || math.Abs(p.VY) > 0.1 {
			t.Fatalf("particle %d velocity out of range: (%f, %f)", i, p.VX, p.VY)
		}
		if p.BaseBrightness < 0.2 || p.BaseBrightness > 0.8 {
			t.Fatalf("particle %d brightness out of range: %f", i, p.BaseBrightness)
		}
	}
}

func TestPointerStartsAtCenter(t *testing.T) {
	f := NewField(200, 100, Config{Count: 1}, testRand())
	x, y := f.Pointer()
	if x != 100 || y != 50 {
		t.Errorf("expected pointer at (100, 50), got (%f, %f)", x, y)
	}
}

func TestFrameMovesByVelocityAndPull(t *testing.T) {
	f := NewField(100, 100, Config{Count: 3}, testRand())
	before := f.Particles()
	for i, p := range before {
		if p.X < 0 || p.X >= 100 || p.Y < 0 || p.Y >= 100 {
			t.Fatalf("particle %d not on surface: (%f, %f)", i, p.X, p.Y)
		}
	}
	px, py := f.Pointer()

	f.Frame(&recordSurface{})

	for i, p := range f.Particles() {
		wantX := before[i].X + (before[i].VX + (px-before[i].X)*pointerPull)
		wantY := before[i].Y + (before[i].VY + (py-before[i].Y)*pointerPull)
		if p.X != wantX || p.Y != wantY {
			t.Errorf("particle %d: got (%f, %f), want (%f, %f)", i, p.X, p.Y, wantX, wantY)
		}
	}
}

func TestFrameWithPointerOnParticleMovesByVelocityOnly(t *testing.T) {
	f := NewField(100, 100, Config{Count: 1}, testRand())
	p := f.Particles()[0]
	f.SetPointer(p.X, p.Y)

	f.Frame(&recordSurface{})

	got := f.Particles()[0]
	if got.X != p.X+p.VX || got.Y != p.Y+p.VY {
		t.Errorf("got (%f, %f), want (%f, %f)", got.X, got.Y, p.X+p.VX, p.Y+p.VY)
	}
}

func TestWrap(t *testing.T) {
	f := NewField(200, 100, Config{}, testRand())

	tests := []struct {
		name  string
		in    Particle
		wantX float64
		wantY float64
	}{
		{"left edge", Particle{X: -15, Y: 50}, 210, 50},
		{"right edge", Particle{X: 211, Y: 50}, -10, 50},
		{"top edge", Particle{X: 20, Y: -10.5}, 20, 110},
		{"bottom edge", Particle{X: 20, Y: 111}, 20, -10},
		{"inside margin", Particle{X: -10, Y: 110}, -10, 110},
		{"corner", Particle{X: -11, Y: -11}, 210, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			f.wrap(&p)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("got (%f, %f), want (%f, %f)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPositionsStayBounded(t *testing.T) {
	rng := testRand()
	f := NewField(120, 80, Config{Count: 60, Twinkle: true}, testRand())
	s := &recordSurface{}
	for frame := 0; frame < 2000; frame++ {
		if frame%50 == 0 {
			// pointer far outside the surface drags particles across edges
			f.Post(PointerEvent(rng.Float64()*4000-2000, rng.Float64()*4000-2000))
		}
		f.Frame(s)
		w, h := f.Size()
		for i, p := range f.Particles() {
			if p.X < -Margin || p.X > float64(w)+Margin || p.Y < -Margin || p.Y > float64(h)+Margin {
				t.Fatalf("frame %d particle %d escaped: (%f, %f)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestBrightnessWithoutTwinkleIsConstant(t *testing.T) {
	f := NewField(100, 100, Config{Count: 5, Twinkle: false}, testRand())
	s := &recordSurface{}
	for frame := 0; frame < 300; frame++ {
		for i, p := range f.Particles() {
			if got := f.Brightness(i); got != p.BaseBrightness {
				t.Fatalf("frame %d particle %d: brightness %f, want %f", frame, i, got, p.BaseBrightness)
			}
		}
		f.Frame(s)
	}
}

func TestBrightnessTwinkle(t *testing.T) {
	f := NewField(100, 100, Config{Count: 4, Twinkle: true}, testRand())
	s := &recordSurface{}
	for frame := 0; frame < 500; frame++ {
		for i, p := range f.Particles() {
			want := p.BaseBrightness * (0.8 + 0.2*math.Sin(float64(frame+i)*0.02))
			if got := f.Brightness(i); math.Abs(got-want) > 1e-12 {
				t.Fatalf("frame %d particle %d: brightness %f, want %f", frame, i, got, want)
			}
			if got := f.Brightness(i); got < 0.6*p.BaseBrightness-1e-12 || got > p.BaseBrightness+1e-12 {
				t.Fatalf("frame %d particle %d: brightness %f outside [0.6, 1] x base", frame, i, got)
			}
		}
		f.Frame(s)
	}
}

func TestFrameDrawsGradientAndCircles(t *testing.T) {
	f := NewField(100, 100, Config{Count: 7, Twinkle: true}, testRand())
	s := &recordSurface{}

	// alpha is computed from the frame counter before it advances
	want := make([]uint8, 7)
	for i := range want {
		want[i] = uint8(math.Round(f.Brightness(i) * 255))
	}
	f.Frame(s)

	if s.clears != 1 || s.gradients != 1 {
		t.Fatalf("expected one clear and one gradient, got %d and %d", s.clears, s.gradients)
	}
	if s.top != GradientTop || s.bottom != GradientBottom {
		t.Errorf("unexpected gradient stops %v -> %v", s.top, s.bottom)
	}
	if len(s.circles) != 7 {
		t.Fatalf("expected 7 circles, got %d", len(s.circles))
	}
	for i, c := range s.circles {
		p := f.Particles()[i]
		if c.x != p.X || c.y != p.Y || c.r != p.Radius {
			t.Errorf("circle %d drawn at (%f, %f, r=%f), particle at (%f, %f, r=%f)", i, c.x, c.y, c.r, p.X, p.Y, p.Radius)
		}
		if c.c.R != 255 || c.c.G != 255 || c.c.B != 255 {
			t.Errorf("circle %d not white: %v", i, c.c)
		}
		if c.c.A != want[i] {
			t.Errorf("circle %d alpha %d, want %d", i, c.c.A, want[i])
		}
	}
	if s.presents != 1 {
		t.Errorf("expected one present, got %d", s.presents)
	}
	if f.FrameCount() != 1 {
		t.Errorf("expected frame count 1, got %d", f.FrameCount())
	}
}

func TestResizeEventRespawns(t *testing.T) {
	f := NewField(100, 100, Config{Count: 25}, testRand())
	old := f.Particles()

	f.Post(ResizeEvent(400, 30))
	f.Frame(&recordSurface{})

	if w, h := f.Size(); w != 400 || h != 30 {
		t.Fatalf("expected size 400x30, got %dx%d", w, h)
	}
	got := f.Particles()
	if len(got) != 25 {
		t.Fatalf("expected 25 particles after resize, got %d", len(got))
	}
	same := 0
	for i := range got {
		if got[i].BaseBrightness == old[i].BaseBrightness && got[i].Radius == old[i].Radius {
			same++
		}
	}
	if same == len(got) {
		t.Error("resize kept the previous particles")
	}
}

func TestRepeatedResizeKeepsCount(t *testing.T) {
	f := NewField(100, 100, Config{Count: 12}, testRand())
	for _, size := range [][2]int{{10, 10}, {0, 0}, {1920, 1080}, {3, 700}} {
		f.Resize(size[0], size[1])
		if got := len(f.Particles()); got != 12 {
			t.Errorf("after resize to %v: %d particles", size, got)
		}
	}
}

func TestEventsApplyInOrder(t *testing.T) {
	f := NewField(100, 100, Config{Count: 2}, testRand())
	f.Post(PointerEvent(1, 2))
	f.Post(ResizeEvent(50, 60))
	f.Post(PointerEvent(3, 4))
	f.Frame(&recordSurface{})

	if x, y := f.Pointer(); x != 3 || y != 4 {
		t.Errorf("expected last pointer (3, 4), got (%f, %f)", x, y)
	}
	if w, h := f.Size(); w != 50 || h != 60 {
		t.Errorf("expected size 50x60, got %dx%d", w, h)
	}
}

func TestPointerEventIsNotAppliedUntilFrame(t *testing.T) {
	f := NewField(100, 100, Config{Count: 1}, testRand())
	f.Post(PointerEvent(7, 8))
	if x, y := f.Pointer(); x != 50 || y != 50 {
		t.Errorf("pointer moved before frame: (%f, %f)", x, y)
	}
}
