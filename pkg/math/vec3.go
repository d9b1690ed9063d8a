package math

import "math"

// Vec3 is a world-space point. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Ground projects v onto the horizontal plane as (X, Z).
func (v Vec3) Ground() Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

// Lift places a ground-plane point at height y.
func Lift(p Vec2, y float64) Vec3 {
	return Vec3{X: p.X, Y: y, Z: p.Y}
}
