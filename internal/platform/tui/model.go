package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Options carries the optional collaborators of a play session.
type Options struct {
	Store     *storage.Store  // Finished sessions are recorded here when set
	Logger    *log.Logger     // Defaults to a discarding logger
	Watcher   *config.Watcher // Reloads the game when the config file changes
	HoldTicks int             // How long a key press counts as held
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// configReporter is implemented by games that load external configuration.
type configReporter interface {
	ConfigError() error
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	watcher   *config.Watcher
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      *HoldTracker
	pending   core.InputFrame // Edge actions waiting for the next tick
	gameState core.GameState
	tickID    int64
	ticks     int64 // Ticks simulated since the last reset
	embedded  bool  // Back returns to the menu instead of being ignored
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		logger:  opts.logger(),
		watcher: opts.Watcher,
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(opts.HoldTicks),
		pending: core.NewInputFrame(),
		tickID:  nextTickID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.reportConfigError()

	return tea.Batch(tickCmd(m.tickID, m.config.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()

	case ConfigChangedMsg:
		return m.handleConfigChange(msg)

	case WatchErrorMsg:
		m.logger.Warn("config watcher", "err", msg.Err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveSession("quit")
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		if m.embedded {
			m.saveSession("back")
			m.back = true
			return m, tea.Quit
		}
	case Holdable(action):
		m.hold.Press(action)
	case action == core.ActionPause, action == core.ActionRestart:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
		m.ticks = 0
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.hold.Apply(&frame)

	if frame.Has(core.ActionRestart) {
		m.saveSession("restart")
		m.ticks = 0
		m.hold.Release()
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	if !frame.Has(core.ActionRestart) && !result.State.Paused {
		m.ticks++
	}

	m.pending.Clear()
	m.hold.Advance()

	return m, tickCmd(m.tickID, m.config.TickRate)
}

// handleConfigChange restarts the game with the rewritten config file.
func (m Model) handleConfigChange(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	m.logger.Info("config changed, restarting", "path", msg.Path)
	m.saveSession("reload")

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.ticks = 0
	m.hold.Release()
	m.reportConfigError()

	return m, watchCmd(m.watcher)
}

// saveSession records the current score. Sessions without points are not kept.
func (m Model) saveSession(reason string) {
	state := m.game.State()
	if m.store == nil || state.Score <= 0 {
		return
	}

	id, err := m.store.SaveScore(m.game.ID(), state.Score, m.ticks)
	if err != nil {
		m.logger.Error("save score", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("session saved",
		"id", id,
		"game", m.game.ID(),
		"score", state.Score,
		"ticks", m.ticks,
		"reason", reason,
	)
}

func (m Model) reportConfigError() {
	if r, ok := m.game.(configReporter); ok {
		if err := r.ConfigError(); err != nil {
			m.logger.Warn("using default config", "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Ticks returns the number of ticks simulated since the last reset.
func (m Model) Ticks() int64 {
	return m.ticks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game in the current terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())

	_, err := p.Run()
	return err
}
