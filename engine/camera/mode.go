package camera

import "github.com/Carmen-Shannon/oxy-orrery/engine/body"

// Mode is the navigation mode of the camera. Exactly one mode is active at a time;
// the concrete types below are the only implementations.
type Mode interface {
	isMode()
	String() string
}

// OrbitDrag is the idle orbit camera: pointer drag rotates, wheel zooms.
type OrbitDrag struct{}

// FocusingOnPlanet smoothly flies the orbit camera toward Target.
type FocusingOnPlanet struct {
	Target *body.Body
}

// ReturningHome smoothly flies the orbit camera back to the home pose.
type ReturningHome struct{}

// CockpitFlight hands the pose to the cockpit navigator.
type CockpitFlight struct{}

func (OrbitDrag) isMode()        {}
func (FocusingOnPlanet) isMode() {}
func (ReturningHome) isMode()    {}
func (CockpitFlight) isMode()    {}

func (OrbitDrag) String() string { return "orbit" }

func (m FocusingOnPlanet) String() string {
	if m.Target == nil {
		return "focusing"
	}
	return "focusing:" + m.Target.Name
}

func (ReturningHome) String() string { return "returning-home" }

func (CockpitFlight) String() string { return "cockpit" }
