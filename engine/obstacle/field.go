package obstacle

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// Field is the live obstacle set. It is owned by the simulation and touched only from the tick.
type Field struct {
	nextID    uint64
	obstacles []*Obstacle
}

// NewField creates an empty Field.
//
// Returns:
//   - *Field: the newly created field
func NewField() *Field {
	return &Field{nextID: 1}
}

// Add inserts o and assigns it a unique ID.
//
// Parameters:
//   - o: the obstacle to add
//
// Returns:
//   - uint64: the assigned ID
func (f *Field) Add(o *Obstacle) uint64 {
	o.ID = f.nextID
	f.nextID++
	f.obstacles = append(f.obstacles, o)
	return o.ID
}

// Remove deletes the obstacle with the given ID. Unknown IDs are ignored.
//
// Parameters:
//   - id: the obstacle ID
//
// Returns:
//   - bool: true if an obstacle was removed
func (f *Field) Remove(id uint64) bool {
	i := slices.IndexFunc(f.obstacles, func(o *Obstacle) bool { return o.ID == id })
	if i < 0 {
		return false
	}
	f.obstacles = slices.Delete(f.obstacles, i, i+1)
	return true
}

// Step moves every obstacle by its motion rule.
//
// Parameters:
//   - dt: elapsed time in seconds
//   - clock: the body registry clock
//   - anchor: the cockpit position
func (f *Field) Step(dt, clock float32, anchor common.Vec3) {
	for _, o := range f.obstacles {
		o.Step(dt, clock, anchor)
	}
}

// Recycle removes non-orbiting obstacles farther than radius from anchor.
// Orbiting obstacles are bound to the sun and never leave the scene.
//
// Parameters:
//   - anchor: the cockpit position
//   - radius: despawn distance
//
// Returns:
//   - int: number of obstacles removed
func (f *Field) Recycle(anchor common.Vec3, radius float32) int {
	before := len(f.obstacles)
	limit := radius * radius
	f.obstacles = slices.DeleteFunc(f.obstacles, func(o *Obstacle) bool {
		return o.Motion != MotionOrbit && o.Position.DistanceSq(anchor) > limit
	})
	return before - len(f.obstacles)
}

// ClearKind removes every obstacle of kind k.
//
// Parameters:
//   - k: the kind to remove
//
// Returns:
//   - int: number of obstacles removed
func (f *Field) ClearKind(k Kind) int {
	before := len(f.obstacles)
	f.obstacles = slices.DeleteFunc(f.obstacles, func(o *Obstacle) bool { return o.Kind == k })
	return before - len(f.obstacles)
}

// Clear removes every obstacle.
func (f *Field) Clear() {
	f.obstacles = nil
}

// All returns the live obstacles. The slice must not be modified.
func (f *Field) All() []*Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// CountKind returns the number of live obstacles of kind k.
func (f *Field) CountKind(k Kind) int {
	n := 0
	for _, o := range f.obstacles {
		if o.Kind == k {
			n++
		}
	}
	return n
}
