package engine

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config is a read-only record of simulation parameters. A caller
// populates it and passes it to New; the engine never mutates it.
type Config struct {
	// Stars is the number of bodies. Must be >= 2.
	Stars int

	// GalaxyDensity controls the initial cloud radius: radius is drawn
	// uniformly from [0, sqrt(Stars)/GalaxyDensity). Must be positive.
	GalaxyDensity float64

	// StarSpeed scales the initial prograde swirl velocity.
	StarSpeed float64

	// Accuracy is theta, the Barnes-Hut opening angle. Must be positive;
	// smaller is more accurate and more expensive. Config.Validate
	// rejects zero; DirectAccelerations takes no theta at all.
	Accuracy float64

	// Epsilon is the softening squared-distance floor. Must be >= 0.
	Epsilon float64

	// Gravity is G, the force-strength constant.
	Gravity float64

	// Speed is a time-scaling multiplier applied after the min-FPS clamp.
	Speed float64

	// MinFPS bounds the simulated time advanced per Step call to
	// 1/MinFPS seconds. Must be positive.
	MinFPS float64
}

// Validate reports every configuration error at once instead of
// stopping at the first, matching §7's "Configuration invalid" error
// kind.
func (c Config) Validate() error {
	var errs error
	if c.Stars < 2 {
		errs = multierr.Append(errs, fmt.Errorf("%w: stars must be >= 2, got %d", ErrInvalidConfig, c.Stars))
	}
	if c.GalaxyDensity <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: galaxy_density must be positive, got %g", ErrInvalidConfig, c.GalaxyDensity))
	}
	if c.Accuracy <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: accuracy (theta) must be positive, got %g", ErrInvalidConfig, c.Accuracy))
	}
	if c.Epsilon < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: epsilon must be non-negative, got %g", ErrInvalidConfig, c.Epsilon))
	}
	if c.MinFPS <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: min_fps must be positive, got %g", ErrInvalidConfig, c.MinFPS))
	}
	return errs
}
