package player

import (
	"fmt"
	"time"
)

// FormatTime formats d as m:ss. Negative durations read as 0:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// TimeLabel is the "position / duration" text next to the progress bar.
func TimeLabel(pos, dur time.Duration) string {
	return FormatTime(pos) + " / " + FormatTime(dur)
}
