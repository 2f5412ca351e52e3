package page

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Palette is the set of colors a theme exposes to the page.
type Palette struct {
	Bg1, Bg2 colorful.Color
	Text     colorful.Color
}

var palettes = [...]Palette{
	Dark: {
		Bg1:  mustHex("#061223"),
		Bg2:  mustHex("#0e2c4b"),
		Text: mustHex("#dbeeff"),
	},
	Light: {
		Bg1:  mustHex("#f0f6ff"),
		Bg2:  mustHex("#d9eefc"),
		Text: mustHex("#042033"),
	},
}

func (t Theme) Palette() Palette { return palettes[t] }

// Background is the page background at fraction f of the way down.
func (p Palette) Background(f float64) color.Color {
	return opaque(p.Bg1.BlendRgb(p.Bg2, clamp01(f)))
}

func (p Palette) TextColor(alpha float64) color.Color {
	r, g, b := p.Text.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

func opaque(c colorful.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
