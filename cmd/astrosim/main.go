// astrosim is a deterministic simulator for a 2-D asteroids-style
// universe, watchable in the terminal.
//
// Usage:
//
//	astrosim scenarios            - List available scenarios
//	astrosim run <scenario>       - Run a scenario headless and log events
//	astrosim watch <scenario>     - Watch a scenario in the terminal
//	astrosim check <program>      - Parse a ship program file
//	astrosim config               - Print the default config YAML
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible runs
//	--config <path>   - Path to a custom sim config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astrosim",
	Short: "A deterministic asteroids-universe simulator",
	Long: `astrosim simulates a bounded 2-D universe of ships, bullets and
minor planets with continuous-time collisions. Ships can carry small
programs that run in lock-step with simulated time.

Available commands:
  scenarios - Show all registered scenarios
  run       - Run a scenario headless, logging collision events
  watch     - Watch a scenario live in the terminal
  check     - Parse and validate a ship program file
  config    - Print the default configuration YAML

Examples:
  astrosim scenarios
  astrosim run headon --duration 10
  astrosim watch rockfield --seed 7
  astrosim check programs/gunner.sp
  astrosim config > my-sim.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "RNG seed for reproducible runs")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sim config YAML")

	// Add subcommands
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}
