package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astro-sim/internal/program"
)

var checkCmd = &cobra.Command{
	Use:   "check <program-file>",
	Short: "Parse and validate a ship program file",
	Long: `Parse a ship program and report syntax errors with positions.

Example program:

  bullets := 3;
  while 0 < bullets {
      fire;
      bullets := bullets + -1;
      skip;
  }

Examples:
  astrosim check programs/gunner.sp`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := program.Parse(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("%s: ok\n", path)
}
