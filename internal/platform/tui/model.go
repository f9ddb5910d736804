package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/camelrace/internal/core"
	"github.com/vovakirdan/camelrace/internal/registry"
)

// Resizer is implemented by games that can follow a terminal resize without
// restarting.
type Resizer interface {
	Resize(width, height int)
}

// EventSource is implemented by games that raise events outside Step.
type EventSource interface {
	PendingEvents() []core.Event
}

// Model is the Bubble Tea model for running a race.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	events     EventLog
	logger     *log.Logger
	raceID     string
	ticks      uint64
	showEvents bool
	allowBack  bool // Back returns to the caller instead of being ignored
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil logger
// discards events.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		events:     NewEventLog(cfg.ScreenW, cfg.ScreenH),
		logger:     logger,
		raceID:     uuid.NewString(),
	}
}

// WithBack lets the Back key leave the race, for sessions that return to
// the menu.
func (m Model) WithBack() Model {
	m.allowBack = true
	return m
}

// boardHeight leaves one line for the help bar.
func boardHeight(screenH int) int {
	return max(screenH-1, 0)
}

// gameConfig is the runtime config handed to the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("race ready", "race", m.raceID, "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
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
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.showEvents {
			m.showEvents = false
		} else if m.allowBack {
			m.backToMenu = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Events):
		m.showEvents = !m.showEvents
		return m, nil
	case key.Matches(msg, m.keys.Save):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("board not saved", "race", m.raceID, "error", err)
		} else {
			m.logger.Info("board saved", "race", m.raceID, "path", path)
		}
		return m, nil
	}

	if m.showEvents {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.events.Scroll(-1)
		case key.Matches(msg, m.keys.Down):
			m.events.Scroll(1)
		}
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	m.events.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, boardHeight(msg.Height))
	} else {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++
	m.drainPending()
	if m.inputFrame.Has(core.ActionNewRace) || m.inputFrame.Has(core.ActionReset) {
		m.raceID = uuid.NewString()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		logEvent(m.logger, m.raceID, ev)
	}
	m.events.Append(m.ticks, m.gameState.Leg, result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// drainPending records events the game raised outside Step, such as the
// start of a race during Reset. Step clears them, so this runs first.
func (m *Model) drainPending() {
	src, ok := m.game.(EventSource)
	if !ok {
		return
	}
	pending := src.PendingEvents()
	for _, ev := range pending {
		logEvent(m.logger, m.raceID, ev)
	}
	m.events.Append(m.ticks, m.game.State().Leg, pending)
}

// saveScreenshot writes the current board as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".camelrace", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys))

	var body string
	if m.showEvents {
		body = m.events.View()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	// Full help overlays the bottom of the board.
	lines := strings.Split(body, "\n")
	if keep := m.config.ScreenH - lipgloss.Height(helpView); keep >= 0 && len(lines) > keep {
		lines = lines[:keep]
	}
	return strings.Join(lines, "\n") + "\n" + helpView
}

// RaceID returns the identifier attached to this race's log lines.
func (m Model) RaceID() string {
	return m.raceID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
