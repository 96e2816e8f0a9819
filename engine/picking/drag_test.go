package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragTracker_ClickWithoutMovement(t *testing.T) {
	d := NewDragTracker(0)
	d.Down(100, 100)
	assert.True(t, d.Pressed())
	assert.True(t, d.Up(101, 100))
	assert.False(t, d.Pressed())
}

func TestDragTracker_DragSuppressesClick(t *testing.T) {
	d := NewDragTracker(4)
	d.Down(100, 100)

	assert.Equal(t, float32(10), d.Move(110, 100))
	assert.True(t, d.Dragging())
	assert.Equal(t, float32(-5), d.Move(105, 100))

	// Returning to the start does not turn the gesture back into a click.
	d.Move(100, 100)
	assert.False(t, d.Up(100, 100))
}

func TestDragTracker_ReleaseFarFromPressIsNotAClick(t *testing.T) {
	d := NewDragTracker(4)
	d.Down(0, 0)
	assert.False(t, d.Up(0, 50))
}

func TestDragTracker_MoveWhileReleased(t *testing.T) {
	d := NewDragTracker(4)
	assert.Zero(t, d.Move(50, 50))
	assert.False(t, d.Up(50, 50))
}
