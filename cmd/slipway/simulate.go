package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slipway-games/slipway/internal/config"
	"github.com/slipway-games/slipway/internal/sim"
)

var (
	flagSimSteps      int
	flagSimConfig     string
	flagSimDifficulty string
	flagSimVerbose    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a display, steering the ball toward
the track center. Useful for tuning track and physics configs: it
reports gates passed, distance traveled, and fall/recovery events.

Examples:
  slipway simulate --steps 5000
  slipway simulate --seed 42 --difficulty hard
  slipway simulate --config ./my-track.yaml --verbose`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSteps, "steps", 5000, "Number of fixed steps to simulate")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every gate and fall event")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "simulate",
	})

	cfg, err := config.Load(flagSimConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	if flagSimDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagSimDifficulty))
	}

	seed := uint32(flagSeed)
	if flagSeed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	world := sim.NewWorld(cfg)
	world.StartRun(seed)

	dt := cfg.Physics.FixedStep()
	logger.Info("run started", "seed", seed, "steps", flagSimSteps, "dt", dt)

	falls := 0
	recoveries := 0

	for i := 0; i < flagSimSteps && world.Active(); i++ {
		// Steer proportionally back toward the center line.
		steer := -world.Player().Lateral / world.Track().HalfWidth()
		result := world.Step(sim.Input{Steering: steer}, dt)

		for _, ev := range result.Events {
			switch ev := ev.(type) {
			case sim.GatePassedEvent:
				if flagSimVerbose {
					logger.Info("gate passed", "index", ev.Index, "distance", fmt.Sprintf("%.1f", ev.Distance))
				}
			case sim.FellOffEvent:
				falls++
				if flagSimVerbose {
					logger.Warn("fell off", "step", i)
				}
			case sim.RecoveredEvent:
				recoveries++
				if flagSimVerbose {
					logger.Info("recovered", "step", i)
				}
			case sim.RunEndedEvent:
				logger.Info("run ended", "score", ev.Score, "distance", fmt.Sprintf("%.1f", ev.Distance))
			}
		}
	}

	p := world.Player()
	logger.Info("simulation finished",
		"score", world.Score(),
		"distance", fmt.Sprintf("%.1f", p.Distance),
		"speed", fmt.Sprintf("%.1f", p.ForwardSpeed),
		"falls", falls,
		"recoveries", recoveries,
		"active", world.Active(),
	)
}
