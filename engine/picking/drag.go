package picking

// DefaultDragThreshold is the pointer travel in pixels past which a press becomes a drag.
const DefaultDragThreshold = 4

// DragTracker separates drag gestures from clicks. A press that travels farther
// than the threshold before release is a drag and does not count as a click.
type DragTracker struct {
	threshold float32

	pressed  bool
	dragging bool
	startX   float32
	startY   float32
	lastX    float32
}

// NewDragTracker creates a tracker with the given travel threshold in pixels.
// A non-positive threshold falls back to DefaultDragThreshold.
func NewDragTracker(threshold float32) *DragTracker {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &DragTracker{threshold: threshold}
}

// Down starts a press at (x, y).
func (d *DragTracker) Down(x, y float32) {
	d.pressed = true
	d.dragging = false
	d.startX, d.startY = x, y
	d.lastX = x
}

// Move reports the horizontal delta since the previous pointer position while pressed.
// It returns 0 when the button is up.
func (d *DragTracker) Move(x, y float32) float32 {
	if !d.pressed {
		return 0
	}
	dx := x - d.lastX
	d.lastX = x
	ox, oy := x-d.startX, y-d.startY
	if ox*ox+oy*oy > d.threshold*d.threshold {
		d.dragging = true
	}
	return dx
}

// Up ends the press and reports whether it was a click.
func (d *DragTracker) Up(x, y float32) bool {
	if !d.pressed {
		return false
	}
	ox, oy := x-d.startX, y-d.startY
	click := !d.dragging && ox*ox+oy*oy <= d.threshold*d.threshold
	d.pressed = false
	d.dragging = false
	return click
}

// Pressed reports whether the button is down.
func (d *DragTracker) Pressed() bool {
	return d.pressed
}

// Dragging reports whether the current press has become a drag.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}
