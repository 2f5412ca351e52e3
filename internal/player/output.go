package player

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Output is the audio device a Player streams into. Play and Clear take the
// lock themselves and must not be called while holding it.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Lock()
	Unlock()
	Play(s ...beep.Streamer)
	Clear()
}

// Speaker is the system speaker.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (Speaker) Lock()   { speaker.Lock() }
func (Speaker) Unlock() { speaker.Unlock() }

func (Speaker) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (Speaker) Clear() { speaker.Clear() }
