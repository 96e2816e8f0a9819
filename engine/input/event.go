package input

// EventType identifies the kind of a buffered input event.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventWheel
	EventResize
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	case EventWheel:
		return "wheel"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is a single window event captured between ticks.
// Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	// Code is the key code for key events.
	Code uint32

	// X and Y are the pointer position in window pixels for pointer events.
	X, Y float32

	// DeltaY is the wheel delta. Positive scrolls down (zoom out).
	DeltaY float32

	// Width and Height are the new framebuffer size for resize events.
	Width, Height int
}

// KeySet is the set of currently held keys.
type KeySet map[uint32]struct{}

// Has reports whether key is held.
func (k KeySet) Has(key uint32) bool {
	_, ok := k[key]
	return ok
}

// Frame is everything the tick consumes from the buffer: held keys at the tick
// boundary and the ordered events received since the previous tick.
type Frame struct {
	Held   KeySet
	Events []Event
}
