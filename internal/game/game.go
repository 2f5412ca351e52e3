package game

import (
	"errors"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/page"
	"github.com/iburimskiy/starlight/internal/player"
	"github.com/iburimskiy/starlight/internal/starfield"
)

const seekCooldown = 50 * time.Millisecond

type pickResult struct {
	path string
	err  error
}

// Game runs the page in an ebiten window.
type Game struct {
	cfg    config.Config
	state  *page.State
	player *player.Player

	welcome, background               *starfield.Animation
	welcomeSurface, backgroundSurface *imageSurface
	overlay                           *ebiten.Image
	pageBackground                    gradientCache

	width, height    int
	outerW, outerH   int
	cursorX, cursorY int
	layout           layout

	// pointer drags
	seeking      bool
	setVolume    bool
	lastSeekTime time.Time

	picking chan pickResult

	lastErr error
}

// New builds the page for cfg. The player may already hold a track.
func New(cfg config.Config, p *player.Player) *Game {
	w, h := cfg.WindowWidth, cfg.WindowHeight
	g := &Game{
		cfg:    cfg,
		player: p,
		width:  w,
		height: h,
		outerW: w,
		outerH: h,
	}

	welcomeRand, backgroundRand := seeded(cfg.Seed)
	g.welcomeSurface = newImageSurface(w, h)
	g.backgroundSurface = newImageSurface(w, h)
	g.welcome = starfield.NewAnimation(
		starfield.NewField(w, h, starfield.Config{Count: cfg.WelcomeStars, Twinkle: cfg.Twinkle}, welcomeRand),
		g.welcomeSurface,
	)
	g.background = starfield.NewAnimation(
		starfield.NewField(w, h, starfield.Config{Count: cfg.BackgroundStars, Twinkle: cfg.Twinkle}, backgroundRand),
		g.backgroundSurface,
	)
	g.overlay = ebiten.NewImage(w, h)

	g.state = page.NewState(page.DefaultSections, time.Now().Year(), w, h)
	g.layout = computeLayout(w, h, g.navTitles())

	g.start()
	return g
}

// start skips the welcome overlay when quick start is configured. The site
// opens on the following ticks without music.
func (g *Game) start() {
	if g.cfg.Quick {
		g.apply(page.Enter{Fast: true})
	}
}

func seeded(seed uint64) (*rand.Rand, *rand.Rand) {
	if seed == 0 {
		return nil, nil
	}
	return rand.New(rand.NewPCG(seed, 1)), rand.New(rand.NewPCG(seed, 2))
}

func (g *Game) navTitles() []string {
	titles := make([]string, len(g.state.Blocks))
	for i, b := range g.state.Blocks {
		titles[i] = b.Title
	}
	return titles
}

func (g *Game) Update() error {
	g.handleResize()
	g.handlePointer()
	g.handlePicked()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.toggleMusic()
	}

	if g.state.SiteVisible() {
		g.updateSite()
	} else {
		g.updateWelcome()
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.apply(page.Tick{DT: dt})
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outerW, g.outerH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) handleResize() {
	if g.outerW == g.width && g.outerH == g.height {
		return
	}
	if g.outerW <= 0 || g.outerH <= 0 {
		return
	}
	g.width, g.height = g.outerW, g.outerH

	g.welcome.Field().Post(starfield.ResizeEvent(g.width, g.height))
	g.background.Field().Post(starfield.ResizeEvent(g.width, g.height))
	g.welcomeSurface.resize(g.width, g.height)
	g.backgroundSurface.resize(g.width, g.height)
	g.overlay.Deallocate()
	g.overlay = ebiten.NewImage(g.width, g.height)
	g.pageBackground.invalidate()

	g.apply(page.Resize{Width: g.width, Height: g.height})
	g.layout = computeLayout(g.width, g.height, g.navTitles())
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	if x == g.cursorX && y == g.cursorY {
		return
	}
	g.cursorX, g.cursorY = x, y
	ev := starfield.PointerEvent(float64(x), float64(y))
	g.welcome.Field().Post(ev)
	g.background.Field().Post(ev)
}

func (g *Game) updateWelcome() {
	if g.state.Phase != page.PhaseWelcome {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.apply(page.Enter{})
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	switch {
	case g.layout.enter.contains(g.cursorX, g.cursorY):
		g.apply(page.Enter{})
	case g.layout.skip.contains(g.cursorX, g.cursorY):
		g.apply(page.Enter{Fast: true})
	}
}

func (g *Game) updateSite() {
	l := g.layout
	x, y := g.cursorX, g.cursorY

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.apply(page.ScrollBy{Delta: -dy * config.WheelStep})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.apply(page.ScrollToTop{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.apply(page.ToggleTheme{})
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.seeking, g.setVolume = false, false
	}
	if g.seeking {
		g.dragSeek(l.progress.fraction(x))
	}
	if g.setVolume {
		g.player.SetVolume(l.volume.fraction(x))
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	switch {
	case l.brand.contains(x, y):
		g.apply(page.ScrollToTop{})
	case l.theme.contains(x, y):
		g.apply(page.ToggleTheme{})
	case g.state.ScrollTopVisible() && l.scrollTop.contains(x, y):
		g.apply(page.ScrollToTop{})
	case l.play.contains(x, y):
		g.toggleMusic()
	case l.open.contains(x, y):
		g.pickFile()
	case l.progress.contains(x, y):
		if g.player.Loaded() {
			g.seeking = true
			g.seek(l.progress.fraction(x))
		}
	case l.mute.contains(x, y):
		g.player.ToggleMute()
	case l.volume.contains(x, y):
		g.setVolume = true
		g.player.SetVolume(l.volume.fraction(x))
	case l.loop.contains(x, y):
		g.player.ToggleLoop()
	default:
		for i, r := range l.nav {
			if r.contains(x, y) {
				g.apply(page.ScrollToSection{Index: i})
				break
			}
		}
	}
}

// apply runs a page transition and carries out what it asks for.
func (g *Game) apply(a page.Action) {
	for _, eff := range g.state.Apply(a) {
		switch eff := eff.(type) {
		case page.OpenSite:
			g.welcome.Stop()
			g.player.SetLoop(true)
			if eff.PlayMusic && g.player.Loaded() {
				g.report(g.player.Play())
			}
		case page.ThemeChanged:
			log.Printf("theme: %s", eff.Theme)
		}
	}
}

func (g *Game) toggleMusic() {
	if !g.player.Loaded() {
		return
	}
	g.report(g.player.Toggle())
}

// dragSeek follows the pointer while the progress bar is held, skipping
// moves smaller than 1% of the track.
func (g *Game) dragSeek(f float64) {
	dur := g.player.Duration()
	if dur <= 0 {
		return
	}
	current := float64(g.player.Position()) / float64(dur)
	if math.Abs(f-current) > 0.01 {
		g.seek(f)
	}
}

func (g *Game) seek(f float64) {
	if time.Since(g.lastSeekTime) < seekCooldown {
		return
	}
	g.report(g.player.SeekFraction(f))
	g.lastSeekTime = time.Now()
}

// pickFile opens the file dialog off the game loop so the page keeps
// animating while it is up.
func (g *Game) pickFile() {
	if g.picking != nil {
		return
	}
	ch := make(chan pickResult, 1)
	g.picking = ch
	go func() {
		path, err := player.SelectFile()
		ch <- pickResult{path: path, err: err}
	}()
}

func (g *Game) handlePicked() {
	if g.picking == nil {
		return
	}
	select {
	case res := <-g.picking:
		g.picking = nil
		if res.err != nil {
			g.report(res.err)
			return
		}
		if res.path == "" {
			return
		}
		if err := g.player.Load(res.path); err != nil {
			g.report(err)
			return
		}
		g.player.SetLoop(true)
		g.report(g.player.Play())
	default:
	}
}

func (g *Game) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, player.ErrNotLoaded) {
		return
	}
	log.Printf("error: %v", err)
	g.lastErr = err
}
