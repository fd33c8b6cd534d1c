// crossroad is a terminal game about getting a chicken across a busy road.
//
// Usage:
//
//	crossroad play     - Play in this terminal
//	crossroad serve    - Start SSH server for remote play
//	crossroad config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Use a custom configuration YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "crossroad",
	Short: "Crossroad - Help the chicken cross the road",
	Long: `Crossroad is a terminal game: move the chicken from the bottom of the
screen to the top without being hit by cars. Every crossing scores a point.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  crossroad play
  crossroad play --seed 42 --log crossroad.log
  crossroad serve --ssh :2222
  crossroad config --config ./my-crossroad.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
