package starfield

import (
	"context"
	"sync"
	"time"
)

// Animation binds a field to the surface it draws on and can be stopped.
// Frames may be driven externally through Frame (e.g. by a game loop's
// refresh callback) or self-scheduled through Run.
type Animation struct {
	field   *Field
	surface Surface

	mu       sync.Mutex
	stop     chan struct{}
	stopOnce sync.Once
}

func NewAnimation(field *Field, surface Surface) *Animation {
	return &Animation{
		field:   field,
		surface: surface,
		stop:    make(chan struct{}),
	}
}

func (a *Animation) Field() *Field { return a.field }

// Frame renders one frame and reports whether the animation is still live.
// After Stop it draws nothing and returns false.
func (a *Animation) Frame() bool {
	if a.Stopped() {
		return false
	}
	a.mu.Lock()
	a.field.Frame(a.surface)
	a.mu.Unlock()
	return true
}

// Stop ends the animation. It is safe to call more than once.
func (a *Animation) Stop() {
	a.stopOnce.Do(func() { close(a.stop) })
}

func (a *Animation) Stopped() bool {
	select {
	case <-a.stop:
		return true
	default:
		return false
	}
}

// Done is closed once Stop has been called.
func (a *Animation) Done() <-chan struct{} { return a.stop }

// Run renders a frame every interval until ctx is cancelled or Stop is
// called. It returns ctx.Err() on cancellation and nil on Stop.
func (a *Animation) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if !a.Frame() {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stop:
			return nil
		case <-ticker.C:
			if !a.Frame() {
				return nil
			}
		}
	}
}
