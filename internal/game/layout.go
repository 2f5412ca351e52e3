package game

import (
	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/page"
)

const (
	navPad       = 12
	themeWidth   = 80
	ctrlSize     = 40
	openWidth    = 56
	timeWidth    = 13 * page.CharWidth
	volumeWidth  = 100
	loopWidth    = 52
	meterWidth   = 6
	controlGap   = 8
	progressBarH = 12
)

// layout holds every clickable area for the current window size.
type layout struct {
	enter, skip rect

	brand rect
	nav   []rect
	theme rect

	scrollTop rect

	panel    rect
	play     rect
	open     rect
	progress rect
	time     rect
	meter    rect
	mute     rect
	volume   rect
	loop     rect
}

func computeLayout(width, height int, titles []string) layout {
	var l layout

	cx, cy := width/2, height/2
	l.enter = rect{cx - config.ButtonWidth - config.ButtonGap/2, cy + 40, config.ButtonWidth, config.ButtonHeight}
	l.skip = rect{cx + config.ButtonGap/2, cy + 40, config.ButtonWidth, config.ButtonHeight}

	x := config.ContentMargin
	l.brand = rect{x, 0, textWidth(page.Brand) + 2*navPad, config.NavHeight}
	x += l.brand.w + navPad
	l.nav = make([]rect, len(titles))
	for i, title := range titles {
		l.nav[i] = rect{x, 0, textWidth(title) + 2*navPad, config.NavHeight}
		x += l.nav[i].w
	}
	l.theme = rect{width - config.ContentMargin - themeWidth, (config.NavHeight - 28) / 2, themeWidth, 28}

	l.panel = rect{
		config.PlayerMargin,
		height - config.PlayerHeight - config.PlayerMargin,
		width - 2*config.PlayerMargin,
		config.PlayerHeight,
	}
	l.scrollTop = rect{
		width - config.PlayerMargin - config.ScrollTopSize,
		l.panel.y - controlGap - config.ScrollTopSize,
		config.ScrollTopSize,
		config.ScrollTopSize,
	}

	rowY := l.panel.y + (l.panel.h-ctrlSize)/2
	x = l.panel.x + controlGap
	l.play = rect{x, rowY, ctrlSize, ctrlSize}
	x += ctrlSize + controlGap
	l.open = rect{x, rowY, openWidth, ctrlSize}
	x += openWidth + controlGap

	right := l.panel.x + l.panel.w - controlGap
	l.loop = rect{right - loopWidth, rowY, loopWidth, ctrlSize}
	right = l.loop.x - controlGap
	l.volume = rect{right - volumeWidth, l.panel.y + (l.panel.h-progressBarH)/2, volumeWidth, progressBarH}
	right = l.volume.x - controlGap
	l.mute = rect{right - ctrlSize - 16, rowY, ctrlSize + 16, ctrlSize}
	right = l.mute.x - controlGap
	l.meter = rect{right - meterWidth, rowY, meterWidth, ctrlSize}
	right = l.meter.x - controlGap
	l.time = rect{right - timeWidth, rowY, timeWidth, ctrlSize}
	right = l.time.x - controlGap

	l.progress = rect{x, l.panel.y + (l.panel.h-progressBarH)/2, max(right-x, 0), progressBarH}
	return l
}
