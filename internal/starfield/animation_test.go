package starfield

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAnimationFrameUntilStop(t *testing.T) {
	s := &recordSurface{}
	a := NewAnimation(NewField(50, 50, Config{Count: 3}, testRand()), s)

	for i := 0; i < 3; i++ {
		if !a.Frame() {
			t.Fatalf("frame %d reported stopped", i)
		}
	}
	a.Stop()
	a.Stop()

	if a.Frame() {
		t.Error("frame after stop reported live")
	}
	if s.clears != 3 {
		t.Errorf("expected 3 drawn frames, got %d", s.clears)
	}
	if !a.Stopped() {
		t.Error("expected Stopped after Stop")
	}
	select {
	case <-a.Done():
	default:
		t.Error("Done not closed after Stop")
	}
}

func TestAnimationRunCancel(t *testing.T) {
	s := &recordSurface{}
	a := NewAnimation(NewField(50, 50, Config{Count: 3}, testRand()), s)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := a.Run(ctx, time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if a.Field().FrameCount() == 0 {
		t.Error("expected at least one frame")
	}
}

func TestAnimationRunStop(t *testing.T) {
	a := NewAnimation(NewField(50, 50, Config{Count: 3}, testRand()), &recordSurface{})

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background(), time.Millisecond) }()

	time.Sleep(10 * time.Millisecond)
	a.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil on stop, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}

	n := a.Field().FrameCount()
	time.Sleep(5 * time.Millisecond)
	if a.Field().FrameCount() != n {
		t.Error("frames advanced after Stop")
	}
}

func TestAnimationRunAlreadyStopped(t *testing.T) {
	a := NewAnimation(NewField(50, 50, Config{Count: 3}, testRand()), &recordSurface{})
	a.Stop()
	if err := a.Run(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if a.Field().FrameCount() != 0 {
		t.Error("stopped animation drew a frame")
	}
}

func TestPostFromOtherGoroutines(t *testing.T) {
	f := NewField(100, 100, Config{Count: 10}, testRand())
	a := NewAnimation(f, &recordSurface{})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				f.Post(PointerEvent(float64(g), float64(i)))
			}
		}(g)
	}
	for i := 0; i < 50; i++ {
		a.Frame()
	}
	wg.Wait()
	a.Frame()

	if len(f.Particles()) != 10 {
		t.Errorf("expected 10 particles, got %d", len(f.Particles()))
	}
}
