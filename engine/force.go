package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// accelerationAt walks the quadtree from node, accumulating the
// Barnes-Hut approximate gravitational acceleration contribution on
// star into accel. This is a total function over valid state: ε>0 (or
// 0 with distinct positions) keeps every division finite, per §4.A.
//
// The acceptance test and contribution form are load-bearing for the
// float-parity claims in §8: d = node.com - star.pos, r = |d|, and the
// accepted contribution is |a|*(cos phi, sin phi) with phi = atan2(d.y,
// d.x) rather than the algebraically equivalent |a|*d/r, reproducing
// original_source/world.c's get_accel exactly.
func accelerationAt(arena *quadArena, stars []Star, quadIdx int, star *Star, theta, epsilon float64, accel *Vec2) {
	node := arena.at(quadIdx)

	d := node.COM.Sub(star.Pos)
	r2 := d.Dot(d)
	r := math.Sqrt(r2)

	if r > node.Size*theta {
		accelAbs := node.Mass / (r2 + epsilon)
		phi := math.Atan2(d.Y, d.X)
		accel.X += accelAbs * math.Cos(phi)
		accel.Y += accelAbs * math.Sin(phi)
		return
	}

	if node.Size == 0 {
		// A zero-size quad holds stars that all share one position.
		// Reaching here means r == 0, i.e. the target sits at that
		// position: the quad contributes nothing and its children are
		// not visited.
		return
	}

	for _, slot := range node.Children {
		switch slot.kind {
		case slotQuad:
			accelerationAt(arena, stars, int(slot.index), star, theta, epsilon, accel)
		case slotStar:
			leafAccel(&stars[slot.index], star, epsilon, accel)
		}
	}
}

// leafAccel applies the same kernel as accelerationAt's accepted branch
// directly between two stars, for the case where a tree descent bottoms
// out at a star child rather than a quad whose size/distance ratio
// already passed the acceptance test.
func leafAccel(other, star *Star, epsilon float64, accel *Vec2) {
	if other == star {
		return
	}
	d := other.Pos.Sub(star.Pos)
	r2 := d.Dot(d)
	if r2 == 0 {
		return
	}
	accelAbs := other.Mass / (r2 + epsilon)
	phi := math.Atan2(d.Y, d.X)
	accel.X += accelAbs * math.Cos(phi)
	accel.Y += accelAbs * math.Sin(phi)
}

// DirectAccelerations computes the exact O(N^2) gravitational
// acceleration (pre-dt/G scaling) on every star, summing each axis with
// gonum/floats.Sum instead of a hand-rolled accumulator. It is the
// oracle for the theta=0 parity law in §8 — Step's tree walk with
// theta=0 always recurses fully and must agree with this function to
// float precision.
func DirectAccelerations(stars []Star, epsilon float64) []Vec2 {
	out := make([]Vec2, len(stars))
	xs := make([]float64, len(stars))
	ys := make([]float64, len(stars))
	for i := range stars {
		for j := range stars {
			if i == j {
				xs[j], ys[j] = 0, 0
				continue
			}
			d := stars[j].Pos.Sub(stars[i].Pos)
			r2 := d.Dot(d)
			if r2 == 0 {
				xs[j], ys[j] = 0, 0
				continue
			}
			accelAbs := stars[j].Mass / (r2 + epsilon)
			phi := math.Atan2(d.Y, d.X)
			xs[j] = accelAbs * math.Cos(phi)
			ys[j] = accelAbs * math.Sin(phi)
		}
		out[i] = Vec2{X: floats.Sum(xs), Y: floats.Sum(ys)}
	}
	return out
}
