package term

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/starlight/internal/config"
	"github.com/iburimskiy/starlight/internal/starfield"
)

// Run draws the background starfield in the terminal until ctx is cancelled
// or the user quits with Escape, q or Ctrl-C.
func Run(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return RunOn(ctx, screen, cfg)
}

// RunOn drives an already initialized screen.
func RunOn(ctx context.Context, screen tcell.Screen, cfg config.Config) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, 2))
	}
	w, h := screen.Size()
	field := starfield.NewField(w, h, starfield.Config{Count: cfg.BackgroundStars, Twinkle: cfg.Twinkle}, rng)
	anim := starfield.NewAnimation(field, NewSurface(screen))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !handle(ev, field) {
				anim.Stop()
				return
			}
		}
	}()

	interval := time.Second / time.Duration(cfg.FPS)
	err := anim.Run(ctx, interval)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// handle turns a terminal event into field input. It returns false when the
// user asked to quit.
func handle(ev tcell.Event, field *starfield.Field) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			return false
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		field.Post(starfield.ResizeEvent(w, h))
	case *tcell.EventMouse:
		x, y := ev.Position()
		field.Post(starfield.PointerEvent(float64(x), float64(y)))
	}
	return true
}
