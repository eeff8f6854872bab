package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// engineSetter is implemented by games that report to a presentation engine.
type engineSetter interface {
	SetEngine(platformer.Engine)
}

// Model is the Bubble Tea model for running a game.
//
// Movement keys go through a HoldTracker, so a key stays held for as long
// as the terminal keeps repeating it. Pause and restart are one-shot and
// reach the game on the next tick only.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	holds     *HoldTracker
	pending   core.InputFrame
	engine    *LogEngine
	logger    *log.Logger
	player    string
	fixedSeed bool

	onGameOver func(storage.Run)
	allowBack  bool

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // run recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A zero seed picks a time-based one for every session.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	engine := NewLogEngine(nil)
	if g, ok := game.(engineSetter); ok {
		g.SetEngine(engine)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(),
		pending:   core.NewInputFrame(),
		engine:    engine,
		fixedSeed: fixed,
	}
}

// WithLogger routes game events to logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	m.logger = logger
	m.engine.logger = logger
	return m
}

// WithPlayer sets the name runs are recorded under.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithBackToMenu lets B/Esc leave the game when it is paused or over.
func (m Model) WithBackToMenu() Model {
	m.allowBack = true
	return m
}

// OnGameOver registers fn to receive every finished run.
func (m Model) OnGameOver(fn func(storage.Run)) Model {
	m.onGameOver = fn
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.startGame()
	return tickCmd(m.config.TickRate)
}

// startGame resets the game and everything tracked for the current run.
func (m *Model) startGame() {
	m.engine.Reset()
	m.holds.Reset()
	m.pending.Clear()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false

	if m.logger != nil {
		m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
	case m.holds.Press(action):
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The level is independent of
// the terminal size, so the running game keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.startGame()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	m.holds.Apply(&frame)
	result := m.game.Step(frame)
	m.gameState = result.State

	m.holds.Advance()
	m.pending.Clear()

	if m.gameState.GameOver && !m.runSaved {
		m.finishRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun records the finished run and hands it to the game over hook.
func (m *Model) finishRun() {
	run := m.RunRecord()

	if m.store != nil && run.Score > 0 {
		if _, err := m.store.SaveRun(run); err != nil && m.logger != nil {
			m.logger.Warn("could not save run", "game", run.GameID, "error", err)
		}
	}
	if m.onGameOver != nil {
		m.onGameOver(run)
	}
}

// RunRecord describes the current session as a storage record.
func (m Model) RunRecord() storage.Run {
	run := storage.Run{
		GameID:    m.game.ID(),
		Player:    m.player,
		Seed:      m.config.Seed,
		Score:     m.gameState.Score,
		LivesLeft: m.gameState.Lives,
		Coins:     m.engine.Collected(platformer.KindCoin) + m.engine.Collected(platformer.KindStar),
		Stomps:    m.engine.Collected(platformer.KindEnemy),
	}
	if g, ok := m.game.(*platformer.Game); ok && g.World() != nil {
		run.Ticks = g.World().Tick()
	}
	return run
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not create screenshot directory", "error", err)
		}
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
