// slicer is a terminal fruit-slicing arcade game: swipe the mouse across
// fruit launched from the bottom of the screen, avoid the bombs.
//
// Usage:
//
//	slicer play              - Play in this terminal
//	slicer serve             - Start SSH server for remote play
//	slicer list              - List available games
//	slicer config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// highScore is shared by every round this process plays.
	highScore = slicer.NewHighScore()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slicer",
	Short: "Slicer - slice fruit in your terminal",
	Long: `Slicer is a terminal arcade game. Fruit, bombs and bonuses are
launched from the bottom of the screen; drag the mouse across them to slice.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the default configuration

Examples:
  slicer play
  slicer play --difficulty hard
  slicer serve --ssh :2222
  slicer config > ~/.slicer/configs/slicer.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	slicer.Register(highScore)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
