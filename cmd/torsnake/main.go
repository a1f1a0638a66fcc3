// torsnake is a snake game on a toroidal grid: the snake wraps around
// the edges of the world instead of dying on them.
//
// Usage:
//
//	torsnake                 - Play with the default configuration
//	torsnake --interval 200  - Auto-step every 200ms
//	torsnake --config x.yaml - Use a custom configuration file
//
// Controls: WASD or arrow keys to steer, q to quit. Each key press
// turns the snake and moves it one cell; with --interval the world
// also advances on its own.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagCellSize int
	flagInterval int
)

var rootCmd = &cobra.Command{
	Use:   "torsnake",
	Short: "Snake on a toroidal grid, in your terminal",
	Long: `torsnake is a minimal snake game on a wrap-around world: leaving one
edge of the grid brings the snake back on the opposite edge. Eat the
apple to grow; the apple relocates to a free cell each time.

Configuration is read from (first match wins):
  1. --config <path>
  2. ~/.torsnake/config.yaml
  3. ./configs/torsnake.yaml
  4. built-in defaults (16x12 world, key-driven stepping)

Examples:
  torsnake
  torsnake --interval 200
  torsnake --cell-size 1 --config ./big-world.yaml`,
	Run: runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetReportTimestamp(false)

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a configuration YAML file")
	rootCmd.Flags().IntVar(&flagCellSize, "cell-size", 0, "Characters per world cell (overrides config)")
	rootCmd.Flags().IntVar(&flagInterval, "interval", -1, "Auto-step interval in ms, 0 disables (overrides config)")
}
