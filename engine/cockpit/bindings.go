package cockpit

import "github.com/Carmen-Shannon/oxy-orrery/common"

// Bindings maps cockpit actions to key codes.
type Bindings struct {
	Forward     uint32
	Back        uint32
	StrafeLeft  uint32
	StrafeRight uint32
	Ascend      uint32
	Descend     uint32
	YawLeft     uint32
	YawRight    uint32
	PitchUp     uint32
	PitchDown   uint32
}

// DefaultBindings returns WASD for translation, Space/Shift for vertical thrust
// and the arrow keys for yaw and pitch.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:     common.KeyW,
		Back:        common.KeyS,
		StrafeLeft:  common.KeyA,
		StrafeRight: common.KeyD,
		Ascend:      common.KeySpace,
		Descend:     common.KeyLeftShift,
		YawLeft:     common.KeyLeft,
		YawRight:    common.KeyRight,
		PitchUp:     common.KeyUp,
		PitchDown:   common.KeyDown,
	}
}
