package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astro-sim/internal/config"
	"github.com/vovakirdan/astro-sim/internal/platform/tui"
	"github.com/vovakirdan/astro-sim/internal/scenario"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scenario>",
	Short: "Watch a scenario in the terminal",
	Long: `Run a scenario and render it live.

Controls:
  P/Space    - Pause
  S/.        - Single step (while paused)
  Q/Ctrl+C   - Quit

Examples:
  astrosim watch headon
  astrosim watch rockfield --seed 7
  astrosim watch duel --config ./my-sim.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
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

	// Get terminal size early; resizes are handled by the model.
	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	if err := tui.Run(w, cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
