// Command barnes-hut-demo drives the engine headlessly, the way
// Helen9125-Barnes-Hut-Simulation's main.go drove its own simulation
// with a scenario switch, except scenario selection here becomes
// cobra flags rather than a single positional command argument, and
// there is no graphics output to generate — the windowing layer is an
// external collaborator the engine package never depends on.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/haloforge/barnes-hut/engine"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		stars    int
		density  float64
		speed    float64
		theta    float64
		epsilon  float64
		gravity  float64
		timeMult float64
		minFPS   float64
		frames   int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "barnes-hut-demo",
		Short: "Run the Barnes-Hut gravity engine headlessly for a fixed number of frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			defer logger.Sync() //nolint:errcheck

			cfg := engine.Config{
				Stars:         stars,
				GalaxyDensity: density,
				StarSpeed:     speed,
				Accuracy:      theta,
				Epsilon:       epsilon,
				Gravity:       gravity,
				Speed:         timeMult,
				MinFPS:        minFPS,
			}

			world, err := engine.New(cfg, engine.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("initializing world: %w", err)
			}
			defer world.Shutdown()

			const wallDT = 1.0 / 60.0
			for i := 0; i < frames; i++ {
				if err := world.Step(wallDT); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
			}

			pos := world.Positions()
			fmt.Printf("ran %d frames over %d stars\n", frames, stars)
			fmt.Printf("last build_time=%s accel_time=%s\n", world.BuildTime(), world.AccelTime())
			if len(pos) > 0 {
				fmt.Printf("star 0 final position: (%.4f, %.4f)\n", pos[0].X, pos[0].Y)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 2000, "number of bodies")
	cmd.Flags().Float64Var(&density, "galaxy-density", 2e-3, "initial cloud density")
	cmd.Flags().Float64Var(&speed, "star-speed", 5, "initial swirl velocity scale")
	cmd.Flags().Float64Var(&theta, "accuracy", 0.8, "Barnes-Hut opening angle theta")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 1e-3, "softening squared-distance floor")
	cmd.Flags().Float64Var(&gravity, "gravity", 1.0, "gravitational constant G")
	cmd.Flags().Float64Var(&timeMult, "speed", 1.0, "time-scaling multiplier")
	cmd.Flags().Float64Var(&minFPS, "min-fps", 30, "minimum simulated FPS (clamps per-frame dt)")
	cmd.Flags().IntVar(&frames, "frames", 600, "number of frames to simulate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")

	return cmd
}
