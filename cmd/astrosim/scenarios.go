package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-sim/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List all available scenarios",
	Long:  `Shows every scenario registered in the simulator, one per line.`,
	Run:   runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) {
	infos := scenario.List()

	if len(infos) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Printf("%d scenarios:\n", len(infos))
	for _, s := range infos {
		fmt.Printf("  %-12s %s\n", s.ID, s.Title)
	}
	fmt.Println()
	fmt.Println("Watch one with 'astrosim watch <id>', or run it headless with 'astrosim run <id>'.")
}
