// slipway is an endless runner played in the terminal: steer a ball
// along a procedurally generated ribbon track and pass numbered gates.
//
// Usage:
//
//	slipway play              - Play in the current terminal
//	slipway scores            - Show the best runs
//	slipway serve             - Start SSH server for remote play
//	slipway simulate          - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set track seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.slipway/runs.db)
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
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slipway",
	Short: "Slipway - ribbon-track endless runner for your terminal",
	Long: `Slipway is a terminal endless runner. A ball rolls down an
endless, procedurally generated ribbon that curves, banks, and slopes.
Steer left and right, stay on the ribbon, and pass the numbered gates.
Slip off the edge and you might still land back on the track further
down. Fall too far and the run is over.

Available commands:
  play      - Play in the current terminal
  scores    - View the best runs
  serve     - Start SSH server for remote play
  simulate  - Run a headless simulation (for tuning configs)

Examples:
  slipway play
  slipway play --seed 42 --difficulty hard
  slipway scores --tui
  slipway serve --ssh :2222
  slipway simulate --steps 5000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Track seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slipway/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
