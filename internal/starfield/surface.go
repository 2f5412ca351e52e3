package starfield

import "image/color"

// Surface is anything a field can paint onto.
type Surface interface {
	Clear()
	// FillGradient paints a vertical gradient from top to bottom over the
	// whole surface.
	FillGradient(top, bottom color.Color)
	FillCircle(x, y, r float64, c color.Color)
}

// Presenter is implemented by surfaces that need an explicit flush once a
// frame is complete.
type Presenter interface {
	Present()
}
