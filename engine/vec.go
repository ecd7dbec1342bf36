package engine

import "math"

// Vec2 is a 2-D double-precision vector, used for star and quad
// positions, velocities, and accelerations.
type Vec2 struct {
	X, Y float64
}

// Vec2f32 is the narrowed, display-facing form of Vec2. Positions is the
// only place in the engine where precision is deliberately lost.
type Vec2f32 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dot returns v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec2) narrow() Vec2f32 { return Vec2f32{X: float32(v.X), Y: float32(v.Y)} }
