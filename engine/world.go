package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// World owns every arena the simulation touches: the star slice, the
// quad arena, and the display buffer. It is the single owned value §9
// recommends in place of the original's process-wide globals; the
// frame driver (Step) is a method on it, and workers receive a shared
// handle at spawn time instead of reaching into package state.
type World struct {
	cfg Config

	stars   []Star
	arena   *quadArena
	display []Vec2f32

	pool *workerPool
	dt   float64 // frame-scoped, constant during phases 2-4, read-only to workers

	logger  *zap.Logger
	metrics *frameMetrics

	buildTime time.Duration
	accelTime time.Duration
}

// New allocates the star and quad arenas, seeds N stars, and starts the
// worker pool, realizing §6's init(config) -> world. It fails fast on
// invalid configuration, allocation failure, or worker spawn failure —
// the three init-time error kinds from §7.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if !o.seeded {
		o.seed = defaultSeed()
	}

	w := &World{
		cfg:     cfg,
		stars:   make([]Star, cfg.Stars),
		arena:   newQuadArena(2 * cfg.Stars),
		display: make([]Vec2f32, cfg.Stars),
		logger:  o.logger,
	}

	metrics, err := newFrameMetrics(o.registerer)
	if err != nil {
		return nil, err
	}
	w.metrics = metrics

	seedStars(w.stars, cfg, newRand64(o.seed))
	for i := range w.stars {
		w.display[i] = w.stars[i].Pos.narrow()
	}

	p := partitionCount(cfg.Stars)
	w.metrics.poolSize.Set(float64(p))
	if p > 1 {
		pool, err := newWorkerPool(w, p)
		if err != nil {
			return nil, err
		}
		w.pool = pool
	}

	w.logger.Info("world initialized",
		zap.Int("stars", cfg.Stars),
		zap.Int("workers", p),
		zap.Float64("theta", cfg.Accuracy),
	)
	return w, nil
}

// Step runs one frame: clamp dt, build the tree, dispatch the
// acceleration phase, integrate positions, publish the display buffer,
// and reset the arena for reuse — the seven-step sequence in §4.E.
func (w *World) Step(wallDT float64) error {
	dt := wallDT
	if maxDT := 1 / w.cfg.MinFPS; dt > maxDT {
		dt = maxDT
	}
	dt *= w.cfg.Speed
	w.dt = dt

	buildStart := time.Now()
	if err := buildTree(w.arena, w.stars); err != nil {
		w.logger.Error("tree build failed", zap.Error(err))
		return fmt.Errorf("step: %w", err)
	}
	w.buildTime = time.Since(buildStart)
	w.metrics.buildTime.Set(w.buildTime.Seconds())

	accelStart := time.Now()
	if w.pool != nil {
		w.pool.dispatch()
	} else {
		for i := range w.stars {
			w.accelerateAndIntegrateVelocity(i)
		}
	}
	for i := range w.stars {
		s := &w.stars[i]
		s.Pos.X += dt * (s.Vel.X + s.Accel.X)
		s.Pos.Y += dt * (s.Vel.Y + s.Accel.Y)
	}
	w.accelTime = time.Since(accelStart)
	w.metrics.accelTime.Set(w.accelTime.Seconds())

	for i := range w.stars {
		w.display[i] = w.stars[i].Pos.narrow()
	}
	w.arena.reset()
	return nil
}

// accelerateAndIntegrateVelocity computes star i's fresh half-scaled
// acceleration by walking the tree, completes the velocity half of
// velocity-Verlet using the previous frame's stored acceleration, and
// overwrites it for next frame. This is the per-star body of §4.D
// step 2, run either inline or inside a worker.
func (w *World) accelerateAndIntegrateVelocity(i int) {
	star := &w.stars[i]
	var accel Vec2
	accelerationAt(w.arena, w.stars, 0, star, w.cfg.Accuracy, w.cfg.Epsilon, &accel)

	scale := w.dt * w.cfg.Gravity / 2
	accel = accel.Scale(scale)

	prev := star.Accel
	star.Vel = star.Vel.Add(prev).Add(accel)
	star.Accel = accel
}

// Positions returns the display buffer: each star's (x, y) narrowed to
// float32, per §3's "display format is the only place precision is
// lost". The returned slice is stable for World's lifetime and is
// overwritten in place by Step; callers must copy it before the next
// Step call if they need a frozen snapshot.
func (w *World) Positions() []Vec2f32 { return w.display }

// BuildTime returns phase 3's wall-clock duration from the most recent Step.
func (w *World) BuildTime() time.Duration { return w.buildTime }

// AccelTime returns phases 4+5's combined wall-clock duration from the most recent Step.
func (w *World) AccelTime() time.Duration { return w.accelTime }

// Shutdown cancels and joins the worker pool. It is a no-op if the
// inline path was used (P == 1, no pool was ever created).
func (w *World) Shutdown() {
	if w.pool != nil {
		w.pool.shutdown()
	}
	w.logger.Info("world shut down")
}
