package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/page"
	"github.com/iburimskiy/starlight/internal/player"
)

var (
	face = basicfont.Face7x13

	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	panelFill   = color.NRGBA{R: 6, G: 18, B: 35, A: 170}
	panelBorder = color.NRGBA{R: 120, G: 160, B: 210, A: 120}
	buttonFill  = color.NRGBA{R: 100, G: 120, B: 160, A: 220}
	buttonHover = color.NRGBA{R: 80, G: 100, B: 140, A: 240}
	buttonOn    = color.NRGBA{R: 120, G: 170, B: 230, A: 255}
	trackFill   = color.NRGBA{R: 25, G: 30, B: 40, A: 200}
	progressOn  = color.NRGBA{R: 140, G: 190, B: 255, A: 200}
)

// Draw renders one display refresh. Each visible starfield advances by one
// frame here.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.state.Theme.Palette()
	bg := g.pageBackground.get(g.width, g.height, palette.Background(0), palette.Background(1))
	screen.DrawImage(bg, nil)

	g.background.Frame()
	if g.state.SiteVisible() {
		screen.DrawImage(g.backgroundSurface.img, nil)
		g.drawSections(screen, palette)
		g.drawNav(screen, palette)
		g.drawScrollTop(screen)
		g.drawPlayer(screen)
	}

	if g.state.WelcomeVisible() {
		g.welcome.Frame()
		g.drawWelcome(screen)
	}

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, config.NavHeight+4)
	}
}

func (g *Game) drawWelcome(screen *ebiten.Image) {
	o := g.overlay
	dark := page.Dark.Palette()
	o.Fill(dark.Background(0.5))
	o.DrawImage(g.welcomeSurface.img, nil)

	title := "Welcome to " + page.Brand
	cx, cy := g.width/2, g.height/2
	text.Draw(o, title, face, cx-textWidth(title)/2, cy-24, white)
	hint := "Enter to begin with music, Skip to arrive quietly"
	text.Draw(o, hint, face, cx-textWidth(hint)/2, cy, dark.TextColor(0.7))

	g.drawButton(o, g.layout.enter, "Enter", false)
	g.drawButton(o, g.layout.skip, "Skip", false)

	alpha, scale, dy := g.state.Overlay()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(cx), -float64(cy))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx), float64(cy)+dy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(o, op)
}

func (g *Game) drawNav(screen *ebiten.Image, palette page.Palette) {
	l := g.layout
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.NavHeight, panelFill, false)
	vector.StrokeLine(screen, 0, config.NavHeight, float32(g.width), config.NavHeight, 1, panelBorder, false)

	baseline := (config.NavHeight + 10) / 2
	text.Draw(screen, page.Brand, face, l.brand.x+navPad, baseline, white)
	for i, r := range l.nav {
		clr := palette.TextColor(0.75)
		if r.contains(g.cursorX, g.cursorY) {
			clr = palette.TextColor(1)
		}
		text.Draw(screen, g.state.Blocks[i].Title, face, r.x+navPad, baseline, clr)
	}

	label := "Light"
	if g.state.ThemePressed() {
		label = "Dark"
	}
	g.drawButton(screen, l.theme, label, g.state.ThemePressed())
}

func (g *Game) drawSections(screen *ebiten.Image, palette page.Palette) {
	const slide = 16
	for i, b := range g.state.Blocks {
		progress := g.state.RevealProgress(i)
		if progress == 0 {
			continue
		}
		y := b.Top - g.state.Offset + (1-progress)*slide
		if y > float64(g.height) || y+b.Height < 0 {
			continue
		}
		x := float32(config.ContentMargin)
		w := float32(g.width - 2*config.ContentMargin)

		fill := panelFill
		fill.A = uint8(float64(fill.A) * progress)
		vector.DrawFilledRect(screen, x, float32(y), w, float32(b.Height), fill, false)
		border := panelBorder
		border.A = uint8(float64(border.A) * progress)
		vector.StrokeRect(screen, x, float32(y), w, float32(b.Height), 1, border, false)

		tx := config.ContentMargin + config.SectionPadding
		ty := int(y) + config.SectionPadding + config.LineHeight - 4
		text.Draw(screen, b.Title, face, tx, ty, palette.TextColor(progress))
		ty += config.LineHeight * 3 / 2
		for _, line := range b.Lines {
			text.Draw(screen, line, face, tx, ty, palette.TextColor(0.85*progress))
			ty += config.LineHeight
		}
	}

	if n := len(g.state.Blocks); n > 0 {
		last := g.state.Blocks[n-1]
		y := int(last.Top+last.Height-g.state.Offset) + config.SectionGap/2
		footer := fmt.Sprintf("(c) %d %s", g.state.Year, page.Brand)
		text.Draw(screen, footer, face, (g.width-textWidth(footer))/2, y, palette.TextColor(0.6))
	}
}

func (g *Game) drawScrollTop(screen *ebiten.Image) {
	if !g.state.ScrollTopVisible() {
		return
	}
	g.drawButton(screen, g.layout.scrollTop, "Top", false)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	l := g.layout
	p := g.player

	vector.DrawFilledRect(screen, float32(l.panel.x), float32(l.panel.y), float32(l.panel.w), float32(l.panel.h), panelFill, false)
	vector.StrokeRect(screen, float32(l.panel.x), float32(l.panel.y), float32(l.panel.w), float32(l.panel.h), 1, panelBorder, false)

	playLabel := "Play"
	if !p.Paused() {
		playLabel = "Pause"
	}
	g.drawButton(screen, l.play, playLabel, !p.Paused())
	g.drawButton(screen, l.open, "Open", false)

	// progress bar
	progress := 0.0
	if dur := p.Duration(); dur > 0 {
		progress = clamp01(float64(p.Position()) / float64(dur))
	}
	r := l.progress
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), trackFill, false)
	if progress > 0 {
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(float64(r.w)*progress), float32(r.h), progressOn, false)
	}
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelBorder, false)
	if p.Loaded() {
		ix := float32(float64(r.x) + progress*float64(r.w))
		vector.DrawFilledCircle(screen, ix, float32(r.y+r.h/2), 7, white, true)
	}
	if r.contains(g.cursorX, g.cursorY) && p.Duration() > 0 {
		at := player.FormatTime(time.Duration(r.fraction(g.cursorX) * float64(p.Duration())))
		ebitenutil.DebugPrintAt(screen, at, g.cursorX-textWidth(at)/2, r.y-20)
	}

	label := player.TimeLabel(p.Position(), p.Duration())
	text.Draw(screen, label, face, l.time.x, l.time.y+l.time.h/2+4, white)

	// level meter
	m := l.meter
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y), float32(m.w), float32(m.h), trackFill, false)
	lh := float32(p.Level() * float64(m.h))
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y+m.h)-lh, float32(m.w), lh, progressOn, false)

	g.drawButton(screen, l.mute, volumeLabel(p.Icon()), p.Muted())

	v := l.volume
	vector.DrawFilledRect(screen, float32(v.x), float32(v.y), float32(v.w), float32(v.h), trackFill, false)
	vector.DrawFilledRect(screen, float32(v.x), float32(v.y), float32(float64(v.w)*p.Volume()), float32(v.h), progressOn, false)
	vector.StrokeRect(screen, float32(v.x), float32(v.y), float32(v.w), float32(v.h), 1, panelBorder, false)

	g.drawButton(screen, l.loop, "Loop", p.Loop())
}

func (g *Game) drawButton(dst *ebiten.Image, r rect, label string, active bool) {
	fill := buttonFill
	switch {
	case active:
		fill = buttonOn
	case r.contains(g.cursorX, g.cursorY):
		fill = buttonHover
	}
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill, false)
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelBorder, false)
	text.Draw(dst, label, face, r.x+(r.w-textWidth(label))/2, r.y+r.h/2+4, white)
}
