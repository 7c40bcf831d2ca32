// frogger is a terminal Frogger: hop a frog across a grid while obstacles
// sweep the rows. Touching an obstacle costs a life and sends the frog back
// to the start.
//
// Usage:
//
//	frogger                      - Play with the default settings
//	frogger -d hard              - Play with a difficulty preset (reserved)
//	frogger --config ./my.yaml   - Play with a custom game config
//	frogger --seed 42            - Play a reproducible obstacle layout
//
// Controls:
//
//	W/A/S/D or arrow keys  - Move
//	Q or Ctrl+C            - Quit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDifficulty string
	flagConfig     string
	flagSeed       int64
)

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - hop across the traffic in your terminal",
	Long: `Frogger is a terminal arcade game. Guide the frog with WASD or the
arrow keys while obstacles sweep across the rows; every hit costs a life
and resets the frog to the bottom of the grid.

The grid, obstacle generation and frame rate can be customized with a
YAML config (see --config).

Examples:
  frogger
  frogger --difficulty easy
  frogger --config ./configs/frogger.yaml
  frogger --seed 42`,
	RunE: runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "medium", "Difficulty preset: easy, medium, hard (accepted but not consulted yet)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the obstacle layout (0 = random based on time)")
	rootCmd.SilenceUsage = true
}
