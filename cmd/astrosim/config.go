package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-sim/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Dump the embedded default configuration to stdout.

Redirect it to a file as a starting point for a custom config:

  astrosim config > my-sim.yaml
  astrosim run rockfield --config my-sim.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	os.Stdout.Write(config.DefaultYAML())
}
