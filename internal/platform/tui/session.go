package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/storage"
)

// screenKind is the active screen of a SessionModel.
type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for `dodger menu` and for SSH sessions.
type SessionModel struct {
	opts       GameOptions
	base       config.DodgerConfig // Config before the preset is applied
	screen     screenKind
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session model showing the start menu.
func NewSessionModel(opts GameOptions) SessionModel {
	return SessionModel{
		opts: opts,
		base: opts.Dodger,
		menu: NewMenuModel(opts.Runtime, opts.Preset, bestScore(opts.Store)),
	}
}

// bestScore reads the stored best score, or 0 without a store.
func bestScore(store *storage.Store) int {
	if store == nil {
		return 0
	}
	best, err := store.Best(storage.DefaultBestKey)
	if err != nil {
		return 0
	}
	return best
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		opts := m.opts
		opts.Dodger = m.base
		opts.Preset = m.menu.Preset()
		opts.Runtime.Seed = 0 // Fresh seed per game
		opts.AutoStart = true
		config.ApplyDodgerPreset(&opts.Dodger, opts.Preset)

		m.opts.Preset = opts.Preset
		m.game = NewGameModel(opts)
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.showMenu()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.showMenu()
	}
	return m, cmd
}

// showMenu returns to a fresh menu keeping the chosen preset.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Runtime, m.opts.Preset, bestScore(m.opts.Store))
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Runtime returns the runtime config (may have been updated by resize).
func (m SessionModel) Runtime() core.RuntimeConfig {
	return m.opts.Runtime
}

// RunMenu runs the menu flow until the user quits.
func RunMenu(opts GameOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
