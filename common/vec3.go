package common

import "math"

// Vec3 is a 3-component world-space vector. It is a value type; copies never alias.
type Vec3 [3]float32

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float32 {
	return v.Sub(o).Length()
}

// DistanceSq returns the squared Euclidean distance between v and o.
func (v Vec3) DistanceSq(o Vec3) float32 {
	d := v.Sub(o)
	return d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
}

// ManhattanDistance returns the sum of per-axis absolute differences between v and o.
func (v Vec3) ManhattanDistance(o Vec3) float32 {
	d := v.Sub(o)
	return float32(math.Abs(float64(d[0])) + math.Abs(float64(d[1])) + math.Abs(float64(d[2])))
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-8 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp moves v toward o by factor t (0 = v, 1 = o).
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}

// IsFinite reports whether every component is finite.
func (v Vec3) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}
