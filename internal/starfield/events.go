package starfield

import "sync"

type EventKind int

const (
	PointerMoved EventKind = iota
	Resized
)

// Event is an input captured outside the render loop. X and Y are set for
// PointerMoved, Width and Height for Resized.
type Event struct {
	Kind          EventKind
	X, Y          float64
	Width, Height int
}

func PointerEvent(x, y float64) Event {
	return Event{Kind: PointerMoved, X: x, Y: y}
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: Resized, Width: width, Height: height}
}

// queue hands events from input goroutines to the frame loop in arrival order.
type queue struct {
	mu      sync.Mutex
	pending []Event
}

func (q *queue) push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

func (q *queue) drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
