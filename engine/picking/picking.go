// Package picking maps pointer clicks to the celestial body under the cursor.
package picking

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/body"
)

// Hit zone in NDC units: a fixed base plus a share of the body radius.
const (
	BaseThreshold   = 0.08
	RadiusThreshold = 0.03
)

// Projector projects world-space points to normalized device coordinates.
// camera.Camera satisfies it.
type Projector interface {
	ProjectToNDC(p common.Vec3) ([2]float32, bool)
}

// Threshold returns the NDC pick radius for a body of the given radius.
func Threshold(radius float32) float32 {
	return BaseThreshold + radius*RadiusThreshold
}

// PickAt returns the body whose projected center is nearest to the pointer,
// among bodies whose center lies within their pick threshold. Bodies that cannot
// be projected are skipped. Returns nil when nothing is under the pointer.
//
// Parameters:
//   - ndc: pointer position in normalized device coordinates
//   - proj: the camera used to project body centers
//   - bodies: candidate bodies
//
// Returns:
//   - *body.Body: the picked body, or nil
func PickAt(ndc [2]float32, proj Projector, bodies []*body.Body) *body.Body {
	if proj == nil || !common.IsFinite(ndc[0]) || !common.IsFinite(ndc[1]) {
		return nil
	}

	var picked *body.Body
	best := float32(math.Inf(1))
	for _, b := range bodies {
		if b == nil {
			continue
		}
		p, ok := proj.ProjectToNDC(b.Center())
		if !ok {
			continue
		}
		dx, dy := ndc[0]-p[0], ndc[1]-p[1]
		d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if d < Threshold(b.Radius) && d < best {
			best = d
			picked = b
		}
	}
	return picked
}

// ScreenToNDC converts a window pixel position to normalized device coordinates.
// Y is flipped so that +Y is up.
//
// Parameters:
//   - x, y: pointer position in pixels, origin top-left
//   - width, height: viewport size in pixels
//
// Returns:
//   - [2]float32: the NDC position
//   - bool: false if the viewport is empty
func ScreenToNDC(x, y, width, height float32) ([2]float32, bool) {
	if width <= 0 || height <= 0 {
		return [2]float32{}, false
	}
	return [2]float32{
		x/width*2 - 1,
		-(y/height*2 - 1),
	}, true
}
