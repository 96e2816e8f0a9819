package camera

import (
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// OrbitPose places the eye on a horizontal circle of radius Distance around Target, Height above it.
type OrbitPose struct {
	Angle    float32
	Distance float32
	Height   float32
	Target   common.Vec3
}

// Eye returns the world-space eye position of the pose.
func (p OrbitPose) Eye() common.Vec3 {
	return p.Target.Add(common.Vec3{
		common.Sin(p.Angle) * p.Distance,
		p.Height,
		common.Cos(p.Angle) * p.Distance,
	})
}

// isFinite reports whether every component is finite.
func (p OrbitPose) isFinite() bool {
	return common.IsFinite(p.Angle) && common.IsFinite(p.Distance) &&
		common.IsFinite(p.Height) && p.Target.IsFinite()
}

// CockpitPose is the first-person ship pose.
type CockpitPose struct {
	Position common.Vec3
	Yaw      float32
	Pitch    float32
}

// Forward returns the unit view direction for the pose's yaw and pitch.
func (p CockpitPose) Forward() common.Vec3 {
	cp := common.Cos(p.Pitch)
	return common.Vec3{common.Sin(p.Yaw) * cp, common.Sin(p.Pitch), common.Cos(p.Yaw) * cp}
}

// Right returns the horizontal strafe axis (cos yaw, 0, -sin yaw). With a right-handed
// look-at view and +Y up it points toward the viewer's left.
func (p CockpitPose) Right() common.Vec3 {
	return common.Vec3{common.Cos(p.Yaw), 0, -common.Sin(p.Yaw)}
}

// Up returns the world up axis used for vertical thrust.
func (p CockpitPose) Up() common.Vec3 {
	return common.Vec3{0, 1, 0}
}
