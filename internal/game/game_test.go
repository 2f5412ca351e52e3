package game

import (
	"image/color"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/page"
	"github.com/iburimskiy/starlight/internal/player"
	"github.com/iburimskiy/starlight/internal/starfield"
)

type nopSurface struct{}

func (nopSurface) Clear()                                    {}
func (nopSurface) FillGradient(top, bottom color.Color)      {}
func (nopSurface) FillCircle(x, y, r float64, c color.Color) {}

type silentOutput struct{ mu sync.Mutex }

func (o *silentOutput) Init(sr beep.SampleRate, bufferSize int) error { return nil }
func (o *silentOutput) Lock()                                         { o.mu.Lock() }
func (o *silentOutput) Unlock()                                       { o.mu.Unlock() }
func (o *silentOutput) Play(s ...beep.Streamer)                       {}
func (o *silentOutput) Clear()                                        {}

type track struct{ beep.StreamSeeker }

func (track) Close() error { return nil }

// newTestGame builds the parts of a Game that effect handling touches.
func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	format := beep.Format{SampleRate: 1000, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Silence(1000))

	p := player.New(&silentOutput{}, 0.6)
	if err := p.LoadStream(track{buf.Streamer(0, buf.Len())}, format); err != nil {
		t.Fatalf("LoadStream: %v", err)
	}

	field := starfield.NewField(200, 100, starfield.Config{Count: 10}, rand.New(rand.NewPCG(1, 2)))
	return &Game{
		cfg:     cfg,
		state:   page.NewState(page.DefaultSections, 2026, config.WindowWidth, config.WindowHeight),
		welcome: starfield.NewAnimation(field, nopSurface{}),
		player:  p,
	}
}

func tickPastLeave(g *Game) {
	step := 16 * time.Millisecond
	for d := time.Duration(0); d <= page.LeaveDuration; d += step {
		g.apply(page.Tick{DT: step})
	}
}

func TestEnterOpensSiteWithMusic(t *testing.T) {
	g := newTestGame(t, config.Default())

	g.apply(page.Enter{})
	g.apply(page.Tick{DT: page.LeaveDuration / 2})
	if g.welcome.Stopped() {
		t.Fatal("welcome stopped before the overlay finished leaving")
	}
	if !g.player.Paused() {
		t.Fatal("music started before the site opened")
	}

	tickPastLeave(g)
	if !g.state.SiteVisible() {
		t.Fatal("site not shown after the leave animation")
	}
	if !g.welcome.Stopped() {
		t.Error("welcome animation still running")
	}
	if g.welcome.Frame() {
		t.Error("stopped welcome animation drew a frame")
	}
	if !g.player.Loop() {
		t.Error("loop not enabled when the site opened")
	}
	if g.player.Paused() {
		t.Error("music not playing after Enter")
	}
}

func TestSkipOpensSiteQuietly(t *testing.T) {
	g := newTestGame(t, config.Default())

	g.apply(page.Enter{Fast: true})
	tickPastLeave(g)

	if !g.welcome.Stopped() {
		t.Error("welcome animation still running")
	}
	if !g.player.Loop() {
		t.Error("loop not enabled when the site opened")
	}
	if !g.player.Paused() {
		t.Error("music playing after Skip")
	}
}

func TestQuickStartSkipsWelcome(t *testing.T) {
	cfg := config.Default()
	cfg.Quick = true
	g := newTestGame(t, cfg)

	g.start()
	if g.state.Phase != page.PhaseLeaving {
		t.Fatalf("expected leaving phase, got %v", g.state.Phase)
	}
	tickPastLeave(g)
	if !g.state.SiteVisible() || !g.welcome.Stopped() {
		t.Error("quick start did not open the site")
	}
	if !g.player.Paused() {
		t.Error("quick start played music")
	}
}

func TestStartWithoutQuickWaitsOnWelcome(t *testing.T) {
	g := newTestGame(t, config.Default())

	g.start()
	tickPastLeave(g)
	if g.state.Phase != page.PhaseWelcome || g.welcome.Stopped() {
		t.Error("site opened without Enter")
	}
}
