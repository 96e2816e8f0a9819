// Package input buffers window events between ticks.
// Window callbacks produce into a Buffer; the tick consumes one Frame per tick.
package input

import "sync"

// defaultCapacity bounds the queued events between two ticks. Older events are dropped first.
const defaultCapacity = 256

// Buffer is the producer/consumer boundary between the window thread and the tick.
// All methods are safe for concurrent use.
type Buffer struct {
	mu *sync.Mutex

	held     KeySet
	events   []Event
	capacity int
	dropped  int
}

// NewBuffer creates an empty Buffer.
//
// Returns:
//   - *Buffer: the newly created buffer
func NewBuffer() *Buffer {
	return &Buffer{
		mu:       &sync.Mutex{},
		held:     make(KeySet),
		capacity: defaultCapacity,
	}
}

// push appends an event, dropping the oldest queued event when full. Caller must hold the mutex.
func (b *Buffer) push(e Event) {
	if len(b.events) >= b.capacity {
		copy(b.events, b.events[1:])
		b.events = b.events[:len(b.events)-1]
		b.dropped++
	}
	b.events = append(b.events, e)
}

// KeyDown records a key press. Repeated presses of a held key are not queued again.
func (b *Buffer) KeyDown(code uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.held.Has(code) {
		return
	}
	b.held[code] = struct{}{}
	b.push(Event{Type: EventKeyDown, Code: code})
}

// KeyUp records a key release.
func (b *Buffer) KeyUp(code uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.held, code)
	b.push(Event{Type: EventKeyUp, Code: code})
}

// PointerDown records a primary button press at (x, y).
func (b *Buffer) PointerDown(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.push(Event{Type: EventPointerDown, X: x, Y: y})
}

// PointerMove records pointer movement to (x, y).
// Consecutive moves are coalesced into the latest position.
func (b *Buffer) PointerMove(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n := len(b.events); n > 0 && b.events[n-1].Type == EventPointerMove {
		b.events[n-1].X, b.events[n-1].Y = x, y
		return
	}
	b.push(Event{Type: EventPointerMove, X: x, Y: y})
}

// PointerUp records a primary button release at (x, y).
func (b *Buffer) PointerUp(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.push(Event{Type: EventPointerUp, X: x, Y: y})
}

// Wheel records a wheel step. Positive deltaY zooms out. Zero deltas are ignored.
func (b *Buffer) Wheel(deltaY float32) {
	if deltaY == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.push(Event{Type: EventWheel, DeltaY: deltaY})
}

// Resize records a framebuffer resize. Only the latest size per tick is kept.
func (b *Buffer) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].Type == EventResize {
			b.events[i].Width, b.events[i].Height = width, height
			return
		}
	}
	b.push(Event{Type: EventResize, Width: width, Height: height})
}

// Snapshot drains the queued events and returns them with a copy of the held keys.
//
// Returns:
//   - Frame: held keys and the events since the previous snapshot, in arrival order
func (b *Buffer) Snapshot() Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	held := make(KeySet, len(b.held))
	for k := range b.held {
		held[k] = struct{}{}
	}
	f := Frame{Held: held, Events: b.events}
	b.events = nil
	return f
}

// Release clears every held key, as when the window loses focus.
func (b *Buffer) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k := range b.held {
		delete(b.held, k)
		b.push(Event{Type: EventKeyUp, Code: k})
	}
}

// Dropped returns how many events were discarded because the buffer was full.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
