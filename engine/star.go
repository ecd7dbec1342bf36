package engine

import (
	"math"
	"sort"
)

// Star is a point mass. Stars are allocated once at init in a
// contiguous slice whose length never changes; Accel already carries
// the dt/2*G factor left over from the previous frame, per §3/§4.E.
type Star struct {
	Pos   Vec2
	Vel   Vec2
	Accel Vec2
	Mass  float64
}

// seedStars fills stars with the initial cloud described in §4.F: a
// uniform-radius, prograde-swirl disk with mass uniform in [1, 10],
// then sorts ascending by mass so the tree builder folds the heavier
// new masses into heavier running totals last (lower floating-point
// error; see §4.C).
func seedStars(stars []Star, cfg Config, rng *rand64) {
	rMax := math.Sqrt(float64(cfg.Stars)) / cfg.GalaxyDensity
	for i := range stars {
		r := rng.Float64() * rMax
		dir := rng.Float64() * 2 * math.Pi
		stars[i] = Star{
			Pos: Vec2{X: r * math.Cos(dir), Y: r * math.Sin(dir)},
			Vel: Vec2{
				X: cfg.StarSpeed * math.Pow(r, 0.25) * math.Sin(dir),
				Y: -cfg.StarSpeed * math.Pow(r, 0.25) * math.Cos(dir),
			},
			Mass: 1 + rng.Float64()*9,
		}
	}
	sort.Slice(stars, func(i, j int) bool { return stars[i].Mass < stars[j].Mass })
}
