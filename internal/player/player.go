package player

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrNotLoaded = errors.New("no track loaded")

// Extensions lists the file types Load can decode.
var Extensions = []string{".wav", ".mp3", ".flac"}

// VolumeIcon is the state shown on the mute button.
type VolumeIcon int

const (
	IconAudible VolumeIcon = iota
	IconSilent
	IconMuted
)

// Player is the background music widget's audio side: one track, play/pause,
// seeking, volume, mute and loop.
type Player struct {
	out      Output
	initDone bool

	file   io.Closer
	source beep.StreamSeekCloser
	format beep.Format
	tap    *tap
	ctrl   *beep.Ctrl
	volume *effects.Volume

	level float64
	muted bool
	loop  bool
}

// New returns a player that streams into out. The initial volume is clamped
// to [0, 1].
func New(out Output, volume float64) *Player {
	return &Player{
		out:   out,
		level: clamp01(volume),
	}
}

// Load decodes the audio file at path, replacing any current track. The new
// track starts paused.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if err := p.LoadStream(streamer, format); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return err
	}
	p.file = f
	log.Printf("loaded %s (%s)", filepath.Base(path), FormatTime(p.Duration()))
	return nil
}

// LoadStream installs an already decoded track. The player takes ownership of
// streamer and closes it on the next load or on Close.
func (p *Player) LoadStream(streamer beep.StreamSeekCloser, format beep.Format) error {
	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := p.out.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		p.out.Clear()
		if err := p.out.Init(format.SampleRate, bufferSize); err != nil {
			// the old track is already off the speaker
			if rerr := p.release(); rerr != nil {
				log.Printf("release previous track: %v", rerr)
			}
			return fmt.Errorf("reinit speaker: %w", err)
		}
	default:
		p.out.Clear()
	}
	if err := p.release(); err != nil {
		log.Printf("release previous track: %v", err)
	}

	p.source = streamer
	p.format = format
	p.tap = newTap(streamer, p.loop)
	p.ctrl = &beep.Ctrl{Streamer: p.tap, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()

	p.out.Play(p.volume)
	return nil
}

func (p *Player) Loaded() bool { return p.source != nil }

// Play resumes playback. A track that ran to its end restarts from the top.
func (p *Player) Play() error {
	if p.source == nil {
		return ErrNotLoaded
	}
	p.out.Lock()
	defer p.out.Unlock()
	if p.tap.ended {
		if err := p.source.Seek(0); err != nil {
			return fmt.Errorf("rewind: %w", err)
		}
		p.tap.ended = false
	}
	p.ctrl.Paused = false
	return nil
}

func (p *Player) Pause() {
	if p.source == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
}

// Toggle pauses a playing track and plays a paused one.
func (p *Player) Toggle() error {
	if p.Paused() {
		return p.Play()
	}
	p.Pause()
	return nil
}

// Paused reports whether no audio is coming out of the track, either because
// it was paused or because it ended.
func (p *Player) Paused() bool {
	if p.source == nil {
		return true
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.ctrl.Paused || p.tap.ended
}

// Seek moves the play head to d, clamped to the track.
func (p *Player) Seek(d time.Duration) error {
	if p.source == nil {
		return ErrNotLoaded
	}
	pos := p.format.SampleRate.N(d)
	if pos < 0 {
		pos = 0
	}
	if n := p.source.Len(); pos >= n {
		pos = max(n-1, 0)
	}

	p.out.Lock()
	defer p.out.Unlock()
	if err := p.source.Seek(pos); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	p.tap.ended = false
	return nil
}

// SeekFraction seeks to f of the track's length, f in [0, 1].
func (p *Player) SeekFraction(f float64) error {
	return p.Seek(time.Duration(clamp01(f) * float64(p.Duration())))
}

func (p *Player) Position() time.Duration {
	if p.source == nil {
		return 0
	}
	p.out.Lock()
	pos := p.source.Position()
	p.out.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *Player) Duration() time.Duration {
	if p.source == nil {
		return 0
	}
	return p.format.SampleRate.D(p.source.Len())
}

// Level is the smoothed output level in [0, 1], for the meter.
func (p *Player) Level() float64 {
	if p.source == nil {
		return 0
	}
	p.out.Lock()
	defer p.out.Unlock()
	if p.ctrl.Paused {
		return 0
	}
	return clamp01(p.tap.level)
}

// SetVolume sets the linear volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.out.Lock()
	p.level = clamp01(v)
	p.applyVolume()
	p.out.Unlock()
}

func (p *Player) Volume() float64 { return p.level }

func (p *Player) ToggleMute() {
	p.out.Lock()
	p.muted = !p.muted
	p.applyVolume()
	p.out.Unlock()
}

func (p *Player) Muted() bool { return p.muted }

func (p *Player) Icon() VolumeIcon {
	switch {
	case p.muted:
		return IconMuted
	case p.level == 0:
		return IconSilent
	default:
		return IconAudible
	}
}

func (p *Player) SetLoop(loop bool) {
	p.out.Lock()
	p.loop = loop
	if p.tap != nil {
		p.tap.loop = loop
	}
	p.out.Unlock()
}

func (p *Player) ToggleLoop() { p.SetLoop(!p.loop) }

func (p *Player) Loop() bool { return p.loop }

// Close stops playback and releases the current track.
func (p *Player) Close() error {
	if p.initDone {
		p.out.Clear()
	}
	return p.release()
}

func (p *Player) release() error {
	var errs []error
	if p.source != nil {
		errs = append(errs, p.source.Close())
		p.source = nil
	}
	if p.file != nil {
		// decoders usually close the file themselves
		if err := p.file.Close(); !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
		p.file = nil
	}
	p.tap, p.ctrl, p.volume = nil, nil, nil
	return errors.Join(errs...)
}

// applyVolume maps the linear level onto the exponential volume effect.
// Callers hold the output lock.
func (p *Player) applyVolume() {
	if p.volume == nil {
		return
	}
	p.volume.Silent = p.muted || p.level == 0
	if p.level > 0 {
		p.volume.Volume = math.Log2(p.level)
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
