package player

import (
	"math"

	"github.com/faiface/beep"
)

const levelSmoothing = 0.6

// tap sits between the decoded track and the speaker. It rewinds the track
// when looping, holds silence once a non-looping track has ended, and keeps a
// smoothed output level for the player's meter.
//
// All fields are guarded by the speaker lock.
type tap struct {
	Source beep.StreamSeeker

	loop  bool
	ended bool
	level float64
	err   error
}

func newTap(src beep.StreamSeeker, loop bool) *tap {
	return &tap{Source: src, loop: loop}
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n := 0
	rewound := false
	for n < len(samples) && !t.ended {
		sn, ok := t.Source.Stream(samples[n:])
		n += sn
		if ok && sn > 0 {
			// short reads are legal mid-track, keep pulling
			rewound = false
			continue
		}
		// drained
		if !t.loop || t.Source.Len() == 0 || (rewound && sn == 0) {
			t.ended = true
			break
		}
		if err := t.Source.Seek(0); err != nil {
			t.err = err
			t.ended = true
			break
		}
		rewound = true
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	t.measure(samples[:n])
	return len(samples), true
}

func (t *tap) Err() error {
	if t.err != nil {
		return t.err
	}
	return t.Source.Err()
}

func (t *tap) measure(samples [][2]float64) {
	if len(samples) == 0 {
		t.level *= levelSmoothing
		return
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	t.level = levelSmoothing*t.level + (1-levelSmoothing)*math.Pow(rms, 0.3)
}
