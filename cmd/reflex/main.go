// reflex is a terminal reaction-test game driven by a serial button pad.
//
// Usage:
//
//	reflex play              - Play in the local terminal
//	reflex serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Frame rate override (default from config: 50)
//	--seed <value>   - RNG seed for reproducible rounds
//	--config <path>  - Path to a custom config YAML
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
	Use:   "reflex",
	Short: "Reflex - a reaction-test game for your terminal",
	Long: `Reflex prompts a direction each round; press the matching button on the
serial reaction pad (or the arrow keys) before the window runs out.
Wrong or late presses cost a life.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play

Examples:
  reflex play
  reflex play --port /dev/ttyACM0
  reflex play --difficulty hard
  reflex serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
