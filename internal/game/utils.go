package game

import (
	"github.com/iburimskiy/starlight/internal/page"
	"github.com/iburimskiy/starlight/internal/player"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

// fraction is where x falls across the rect, clamped to [0, 1].
func (r rect) fraction(x int) float64 {
	if r.w <= 0 {
		return 0
	}
	return clamp01(float64(x-r.x) / float64(r.w))
}

func textWidth(s string) int { return len(s) * page.CharWidth }

func volumeLabel(icon player.VolumeIcon) string {
	switch icon {
	case player.IconMuted:
		return "Muted"
	case player.IconSilent:
		return "Vol 0"
	default:
		return "Vol"
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
