package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface paints a starfield onto terminal cells, one field unit per cell.
// Alpha is resolved against the row's background since cells are opaque.
type Surface struct {
	screen tcell.Screen
	rows   []colorful.Color
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Clear() {
	_, h := s.screen.Size()
	if len(s.rows) != h {
		s.rows = make([]colorful.Color, h)
	}
	for i := range s.rows {
		s.rows[i] = colorful.Color{}
	}
	s.screen.Clear()
}

func (s *Surface) FillGradient(top, bottom color.Color) {
	w, h := s.screen.Size()
	a := color.NRGBAModel.Convert(top).(color.NRGBA)
	b := color.NRGBAModel.Convert(bottom).(color.NRGBA)
	for y := 0; y < h && y < len(s.rows); y++ {
		ratio := 0.0
		if h > 1 {
			ratio = float64(y) / float64(h-1)
		}
		ca, aa := flatten(a)
		cb, ab := flatten(b)
		alpha := aa + (ab-aa)*ratio
		s.rows[y] = s.rows[y].BlendRgb(ca.BlendRgb(cb, ratio), alpha)

		style := tcell.StyleDefault.Background(cellColor(s.rows[y]))
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	w, h := s.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h || cy >= len(s.rows) {
		return
	}
	star, alpha := flatten(color.NRGBAModel.Convert(c).(color.NRGBA))
	bg := s.rows[cy]
	fg := bg.BlendRgb(star, alpha)
	style := tcell.StyleDefault.Background(cellColor(bg)).Foreground(cellColor(fg))
	s.screen.SetContent(cx, cy, glyph(r), nil, style)
}

func (s *Surface) Present() { s.screen.Show() }

// glyph picks a character that reads as bigger for bigger stars.
func glyph(r float64) rune {
	switch {
	case r < 0.8:
		return '.'
	case r < 1.4:
		return '+'
	default:
		return '*'
	}
}

func flatten(c color.NRGBA) (colorful.Color, float64) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}, float64(c.A) / 255
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
