package page

import (
	"math"
	"time"

	"github.com/iburimskiy/starlight/internal/config"
)

type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseLeaving
	PhaseSite
)

const (
	LeaveDuration  = 480 * time.Millisecond
	RevealDuration = 600 * time.Millisecond

	// RevealThreshold is the visible fraction at which a section reveals.
	RevealThreshold = 0.12

	// ScrollTopThreshold is the offset past which the scroll-to-top button shows.
	ScrollTopThreshold = 320

	scrollEase = 80 * time.Millisecond
	footerSize = 3 * config.LineHeight
)

// Block is a laid out section.
type Block struct {
	Section
	Lines  []string
	Top    float64
	Height float64

	Revealed bool
	revealed time.Duration
}

// State is everything the page shows besides the starfields and the player.
// It only changes through Apply.
type State struct {
	Phase Phase
	Theme Theme
	Year  int

	Width, Height int

	Offset float64
	target float64

	Blocks []Block

	fast          bool
	leaving       time.Duration
	contentHeight float64
}

// NewState lays out sections for a width x height window.
func NewState(sections []Section, year, width, height int) *State {
	s := &State{Year: year}
	s.Blocks = make([]Block, len(sections))
	for i, sec := range sections {
		s.Blocks[i].Section = sec
	}
	s.layout(width, height)
	return s
}

// Apply performs a transition and returns the side effects the caller should
// carry out.
func (s *State) Apply(a Action) []Effect {
	var effects []Effect
	switch a := a.(type) {
	case Enter:
		if s.Phase != PhaseWelcome {
			return nil
		}
		s.Phase = PhaseLeaving
		s.fast = a.Fast
		s.leaving = 0
	case Tick:
		effects = s.tick(a.DT)
	case ToggleTheme:
		if s.Theme == Dark {
			s.Theme = Light
		} else {
			s.Theme = Dark
		}
		effects = append(effects, ThemeChanged{Theme: s.Theme})
	case ScrollBy:
		s.target = s.clampOffset(s.target + a.Delta)
	case ScrollToSection:
		if a.Index >= 0 && a.Index < len(s.Blocks) {
			s.target = s.clampOffset(s.Blocks[a.Index].Top - config.NavHeight)
		}
	case ScrollToTop:
		s.target = 0
	case Resize:
		s.layout(a.Width, a.Height)
		s.target = s.clampOffset(s.target)
		s.Offset = s.clampOffset(s.Offset)
		s.reveal()
	}
	return effects
}

func (s *State) tick(dt time.Duration) []Effect {
	var effects []Effect
	if s.Phase == PhaseLeaving {
		s.leaving += dt
		if s.leaving >= LeaveDuration {
			s.Phase = PhaseSite
			effects = append(effects, OpenSite{PlayMusic: !s.fast})
		}
	}

	if d := s.target - s.Offset; math.Abs(d) < 0.5 {
		s.Offset = s.target
	} else {
		s.Offset += d * (1 - math.Exp(-float64(dt)/float64(scrollEase)))
	}

	for i := range s.Blocks {
		if s.Blocks[i].Revealed {
			s.Blocks[i].revealed += dt
		}
	}
	s.reveal()
	return effects
}

// reveal marks sections that crossed the visibility threshold. Revealed
// sections stay revealed.
func (s *State) reveal() {
	if s.Phase != PhaseSite {
		return
	}
	for i := range s.Blocks {
		b := &s.Blocks[i]
		if !b.Revealed && s.VisibleRatio(i) >= RevealThreshold {
			b.Revealed = true
		}
	}
}

// VisibleRatio is the fraction of section i inside the viewport.
func (s *State) VisibleRatio(i int) float64 {
	b := s.Blocks[i]
	if b.Height <= 0 {
		return 0
	}
	top := math.Max(b.Top, s.Offset)
	bottom := math.Min(b.Top+b.Height, s.Offset+float64(s.Height))
	return math.Max(0, bottom-top) / b.Height
}

// RevealProgress is how far section i's fade-in has run, in [0, 1].
func (s *State) RevealProgress(i int) float64 {
	b := s.Blocks[i]
	if !b.Revealed {
		return 0
	}
	return clamp01(float64(b.revealed) / float64(RevealDuration))
}

// Overlay describes the welcome overlay while it animates out: opacity,
// scale and vertical offset in pixels.
func (s *State) Overlay() (alpha, scale, dy float64) {
	switch s.Phase {
	case PhaseWelcome:
		return 1, 1, 0
	case PhaseSite:
		return 0, 0.98, -8
	}
	t := ease(clamp01(float64(s.leaving) / float64(LeaveDuration)))
	return 1 - t, 1 - 0.02*t, -8 * t
}

func (s *State) WelcomeVisible() bool { return s.Phase != PhaseSite }

func (s *State) SiteVisible() bool { return s.Phase == PhaseSite }

func (s *State) ScrollTopVisible() bool { return s.Offset > ScrollTopThreshold }

// ThemePressed is the toggle's pressed state; pressed means light.
func (s *State) ThemePressed() bool { return s.Theme == Light }

func (s *State) MaxOffset() float64 {
	return math.Max(0, s.contentHeight-float64(s.Height))
}

// Target is where a smooth scroll is heading.
func (s *State) Target() float64 { return s.target }

func (s *State) ContentHeight() float64 { return s.contentHeight }

func (s *State) layout(width, height int) {
	s.Width, s.Height = width, height
	textWidth := width - 2*config.ContentMargin - 2*config.SectionPadding
	y := float64(config.NavHeight + config.ContentMargin)
	for i := range s.Blocks {
		b := &s.Blocks[i]
		b.Lines = Wrap(b.Body, textWidth)
		b.Top = y
		b.Height = float64(2*config.SectionPadding + config.LineHeight*3/2 + len(b.Lines)*config.LineHeight)
		y += b.Height + config.SectionGap
	}
	s.contentHeight = y + footerSize + config.PlayerHeight + config.PlayerMargin
}

func (s *State) clampOffset(v float64) float64 {
	return math.Max(0, math.Min(v, s.MaxOffset()))
}

// ease approximates the CSS "ease" timing curve.
func ease(t float64) float64 {
	return t * t * (3 - 2*t)
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
