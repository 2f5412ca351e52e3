package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// imageSurface is an offscreen ebiten image a starfield paints on.
type imageSurface struct {
	img      *ebiten.Image
	gradient gradientCache
}

func newImageSurface(width, height int) *imageSurface {
	return &imageSurface{img: ebiten.NewImage(max(width, 1), max(height, 1))}
}

func (s *imageSurface) resize(width, height int) {
	s.img.Deallocate()
	s.img = ebiten.NewImage(max(width, 1), max(height, 1))
	s.gradient.invalidate()
}

func (s *imageSurface) Clear() { s.img.Clear() }

func (s *imageSurface) FillGradient(top, bottom color.Color) {
	w, h := s.img.Bounds().Dx(), s.img.Bounds().Dy()
	s.img.DrawImage(s.gradient.get(w, h, top, bottom), nil)
}

func (s *imageSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

// gradientCache keeps a vertical gradient image until its size or stops
// change.
type gradientCache struct {
	img         *ebiten.Image
	top, bottom color.Color
}

func (c *gradientCache) get(width, height int, top, bottom color.Color) *ebiten.Image {
	if c.img != nil && c.top == top && c.bottom == bottom &&
		c.img.Bounds().Dx() == width && c.img.Bounds().Dy() == height {
		return c.img
	}
	c.invalidate()
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
	c.top, c.bottom = top, bottom

	a := color.NRGBAModel.Convert(top).(color.NRGBA)
	b := color.NRGBAModel.Convert(bottom).(color.NRGBA)
	for y := 0; y < height; y++ {
		ratio := 0.0
		if height > 1 {
			ratio = float64(y) / float64(height-1)
		}
		vector.DrawFilledRect(c.img, 0, float32(y), float32(width), 1, blend(a, b, ratio), false)
	}
	return c.img
}

func (c *gradientCache) invalidate() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

// blend mixes two colors in RGB space and interpolates alpha linearly.
func blend(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, clamp01(t)).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*clamp01(t)
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}
