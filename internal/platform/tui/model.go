package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

// eventSource is implemented by games that report round events.
type eventSource interface {
	DrainEvents() []slicer.Event
}

// Model is the Bubble Tea model driving one play session.
// The bottom terminal row holds the short help line; the game gets the rest.
type Model struct {
	game       registry.GestureGame
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	user       string
	swiping    bool
	quitting   bool
}

// NewModel creates a model for the given game. A nil logger discards output.
func NewModel(game registry.GestureGame, cfg core.RuntimeConfig, logger *log.Logger, user string) Model {
	cfg = cfg.Normalized(func() int64 { return time.Now().UnixNano() })
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		user:       user,
	}
	// Reset here rather than in Init: Init has a value receiver and the
	// game must be ready before the first View.
	m.game.Reset(m.config)
	return m
}

// playRows returns the rows left for the game below the help line.
func playRows(termH int) int {
	return core.Max(termH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("round started", "user", m.user, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Debug("quit",
			"user", m.user,
			"score", m.gameState.Score,
			"lives", m.gameState.Lives,
			"best", m.gameState.Best,
		)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse forwards swipes to the game as they happen, between ticks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := MouseGesture(msg, m.swiping)
	if g == GestureNone {
		return m, nil
	}
	m.swiping = forwardGesture(m.game, g, msg, m.screen.Width(), m.screen.Height())
	m.logEvents()
	return m, nil
}

// handleResize processes window resize events.
// The play area has a fixed size, so the round carries on at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.swiping = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes the game's pending round events to the logger.
func (m Model) logEvents() {
	src, ok := m.game.(eventSource)
	if !ok {
		return
	}

	for _, ev := range src.DrainEvents() {
		switch ev.Kind {
		case slicer.EventRoundOver:
			m.logger.Info("round over", "user", m.user, "score", ev.Score, "tick", ev.Tick)
		case slicer.EventHighScore:
			m.logger.Info("new high score", "user", m.user, "score", ev.Value)
		case slicer.EventFaster:
			m.logger.Debug("spawn interval", "user", m.user, "interval", ev.Value, "score", ev.Score)
		case slicer.EventSliced, slicer.EventFruitMissed:
			m.logger.Debug(ev.Kind.String(), "user", m.user, "entity", ev.Entity, "score", ev.Score)
		default:
			m.logger.Debug(ev.Kind.String(), "user", m.user, "value", ev.Value, "score", ev.Score)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".slicer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local play session on the terminal.
func Run(game registry.GestureGame, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger, os.Getenv("USER"))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release drive swipes
	)

	_, err := p.Run()
	return err
}
