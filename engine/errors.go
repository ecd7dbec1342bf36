package engine

import "errors"

// Error kinds, matching the taxonomy in §7: configuration is rejected
// at init, allocation and worker-spawn failures are fatal at init, and
// quad capacity exhaustion is fatal mid-build. None of these are
// retried — each frame is a fresh computation, so a failed Step leaves
// the World unusable and the caller should treat it as terminal.

var (
	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAllocation is returned by New when the frame metrics cannot be
	// registered. The arenas are allocated with make, which panics on
	// failure instead of returning this error.
	ErrAllocation = errors.New("allocation failure")

	// ErrWorkerSpawn is returned when the worker pool cannot be started at init.
	ErrWorkerSpawn = errors.New("worker spawn failure")

	// ErrCapacityExceeded is returned from Step when the quad arena's
	// 2*N budget is exhausted during the build phase. This is the
	// backstop for pathological inputs such as many exactly
	// coincident stars; see SPEC_FULL.md §4 for the policy rationale.
	ErrCapacityExceeded = errors.New("quad arena capacity exceeded")
)
