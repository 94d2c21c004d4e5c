package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
	"github.com/vovakirdan/tui-slicer/internal/logging"
	"github.com/vovakirdan/tui-slicer/internal/platform/tui"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a round in this terminal. The terminal must report mouse
drags; most modern terminals do.

Controls:
  Mouse drag - Slice
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start with full lives and slower spawns
  normal - Default lives and spawn ramp
  hard   - Fewer lives, faster spawns, earlier ramp
  fixed  - No ramp, spawn interval never shrinks

Examples:
  slicer play
  slicer play --difficulty easy
  slicer play --config ./my-slicer.yaml
  slicer play --seed 42 --log-file /tmp/slicer.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the game and reports
// whether the resulting configuration is usable.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	slicer.SetConfigPath(flagConfig)
	slicer.SetDifficultyPreset(flagDifficulty)

	_, err := slicer.LoadConfig()
	return err
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := slicer.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'slicer list' to see available games", gameID)
	}

	logger, closeLog, err := logging.Open(flagLogFile, flagLogLevel, "slicer")
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		logger.Warn("config rejected, using defaults", "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	game, ok := g.(registry.GestureGame)
	if !ok {
		return fmt.Errorf("game %q cannot be played with the mouse", gameID)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if best := highScore.Best(); best > 0 {
		fmt.Printf("High score this session: %d\n", best)
	}
	return nil
}
