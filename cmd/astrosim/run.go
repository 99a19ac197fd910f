package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-sim/internal/config"
	"github.com/vovakirdan/astro-sim/internal/scenario"
	"github.com/vovakirdan/astro-sim/internal/world"
)

var (
	flagDuration float64
	flagStep     float64
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario headless",
	Long: `Run a scenario without a UI, logging each object collision to
stderr and printing a summary at the end. Boundary bounces are counted
in the summary and logged only at debug level.

The simulation advances in evolve slices of --step simulated seconds
until --duration is reached. Results depend only on the scenario, the
config and the seed.

Examples:
  astrosim run headon
  astrosim run gauntlet --duration 30
  astrosim run rockfield --seed 7 --step 0.5`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().Float64Var(&flagDuration, "duration", 60, "Simulated seconds to run")
	runCmd.Flags().Float64Var(&flagStep, "step", 1, "Seconds per evolve slice")
}

// logListener logs collision events through charmbracelet/log.
type logListener struct {
	logger *log.Logger

	objects    int
	boundaries int
}

// ObjectCollision implements world.CollisionListener.
func (l *logListener) ObjectCollision(a, b world.Entity, x, y float64) {
	l.objects++
	l.logger.Info("object collision",
		"a", a.Kind().String(), "b", b.Kind().String(), "x", x, "y", y)
}

// BoundaryCollision implements world.CollisionListener.
func (l *logListener) BoundaryCollision(e world.Entity, x, y float64) {
	l.boundaries++
	l.logger.Debug("boundary collision",
		"entity", e.Kind().String(), "x", x, "y", y)
}

func runRun(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	if !scenario.Exists(scenarioID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
		fmt.Fprintln(os.Stderr, "Run 'astrosim scenarios' to see available scenarios.")
		os.Exit(1)
	}

	cfg, err := config.LoadSim(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := scenario.Build(scenarioID, cfg, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scenario: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	listener := &logListener{logger: logger}

	if flagStep <= 0 {
		flagStep = 1
	}
	var elapsed float64
	for elapsed < flagDuration {
		step := flagStep
		if remaining := flagDuration - elapsed; remaining < step {
			step = remaining
		}
		if err := w.Evolve(step, listener); err != nil {
			logger.Error("run aborted", "t", elapsed, "err", err)
			os.Exit(1)
		}
		elapsed += step
	}

	fmt.Printf("simulated %.1fs: %d entities left, %d object collisions, %d boundary bounces\n",
		elapsed, len(w.Entities()), listener.objects, listener.boundaries)
}
