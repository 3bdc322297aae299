package tui

import (
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
	"github.com/vovakirdan/neon-dodger/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Dodger  config.DodgerConfig
	Runtime core.RuntimeConfig
	Preset  config.DifficultyPreset
	Store   *storage.Store // Optional; nil keeps the best score in memory
	Logger  *log.Logger    // Optional; nil discards log output

	// Clipboard enables copying the share text. It is off for SSH
	// sessions where the clipboard belongs to the server.
	Clipboard bool

	// AutoStart starts a run as soon as the program starts.
	AutoStart bool

	// Clock overrides the frame clock, for tests.
	Clock dodger.Clock
}

// autoStartMsg starts the first run when AutoStart is set.
type autoStartMsg struct{}

// GameModel is the Bubble Tea model for one Neon Dodger session.
type GameModel struct {
	loop      *dodger.Loop
	screen    *core.Screen
	mapper    dodger.CellMapper
	store     *storage.Store
	logger    *log.Logger
	runtime   core.RuntimeConfig
	preset    config.DifficultyPreset
	keyMapper *KeyMapper
	input     core.InputFrame
	tapJump   float64
	autoStart bool

	copyText func(string) error // nil when the clipboard is unavailable

	ticking    bool // A TickMsg is in flight
	showHelp   bool
	status     string
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model in the idle state.
func NewGameModel(opts GameOptions) GameModel {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var best dodger.BestStore = &dodger.MemoryBest{}
	if opts.Store != nil {
		best = storage.NewBestScore(opts.Store, storage.DefaultBestKey)
	}

	mapper := dodger.NewCellMapper(opts.Dodger.Terminal)
	session := dodger.NewSession(opts.Dodger, mapper.Viewport(rt.ScreenW, rt.ScreenH), rt.Seed, best)
	if err := session.Err(); err != nil {
		logger.Warn("could not load best score", "error", err)
	}

	m := GameModel{
		loop:      dodger.NewLoop(session, opts.Clock),
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		mapper:    mapper,
		store:     opts.Store,
		logger:    logger,
		runtime:   rt,
		preset:    opts.Preset,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
		tapJump:   opts.Dodger.Input.TapJumpFraction,
		autoStart: opts.AutoStart,
	}
	if opts.Clipboard {
		m.copyText = clipboard.WriteAll
	}
	return m
}

// Init starts the first run when AutoStart is set.
func (m GameModel) Init() tea.Cmd {
	if !m.autoStart {
		return nil
	}
	return func() tea.Msg { return autoStartMsg{} }
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.ticking = false
		return m.advance()

	case autoStartMsg:
		m.input.Set(core.ActionStart)
		return m.kick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionShare:
		m.share()
		return m, nil

	case action == core.ActionBack:
		if m.Session().State() == dodger.StateRunning {
			return m, nil
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionNone:
		return m, nil
	}

	m.showHelp = false
	m.input.Set(action)
	return m.kick()
}

// handleMouse maps left clicks to taps.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Tap at the center of the clicked cell
	x := (float64(msg.X) + 0.5) * m.mapper.CellW
	y := (float64(msg.Y) + 0.5) * m.mapper.CellH
	session := m.Session()
	action := dodger.TapAction(session.State(), session.World(), x, y, m.tapJump)
	if action == core.ActionNone {
		return m, nil
	}

	m.input.Set(action)
	return m.kick()
}

// handleResize rebuilds the world for the new terminal size without
// resetting the run.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	vp := m.mapper.Viewport(msg.Width, msg.Height)
	m.Session().Resize(vp.Width, vp.Height)
	return m, nil
}

// kick processes queued input right away when no tick is pending, so a
// start or resume from a stopped loop does not wait for a tick.
func (m GameModel) kick() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	return m.advance()
}

// advance runs one loop frame and schedules the next one while running.
func (m GameModel) advance() (tea.Model, tea.Cmd) {
	before := m.Session().State()
	if m.input.Has(core.ActionStart) || m.input.Has(core.ActionRestart) {
		m.status = ""
	}

	snap, more := m.loop.Frame(m.input)
	m.input.Clear()

	if before != dodger.StateRunning && snap.State == dodger.StateRunning {
		m.logger.Debug("run started", "seed", m.runtime.Seed, "difficulty", m.preset)
	}
	if before != dodger.StateGameOver && snap.State == dodger.StateGameOver {
		m.onGameOver(snap)
	}

	if !more {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.runtime.TickRate)
}

// onGameOver records the finished run.
func (m *GameModel) onGameOver(snap dodger.Snapshot) {
	duration := time.Duration(snap.Elapsed * float64(time.Second))
	m.logger.Info("game over", "score", snap.Score, "best", snap.Best, "duration", duration.Round(time.Millisecond))

	if err := m.Session().Err(); err != nil {
		m.logger.Warn("could not save best score", "error", err)
	}
	if m.store == nil || snap.Score <= 0 {
		return
	}
	if _, err := m.store.RecordRun(snap.Score, string(m.preset), duration); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// share copies the share text after a run, or shows it when no
// clipboard is available.
func (m *GameModel) share() {
	session := m.Session()
	if session.State() != dodger.StateGameOver {
		return
	}

	text := dodger.ShareText(session.Score())
	if m.copyText == nil {
		m.status = text
		return
	}
	if err := m.copyText(text); err != nil {
		m.logger.Warn("clipboard unavailable", "error", err)
		m.status = text
		return
	}
	m.status = "Copied to clipboard!"
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	dodger.Render(m.screen, m.Session().Snapshot(), m.mapper)
	if m.showHelp {
		drawTextBox(m.screen, strings.Split(dodger.ControlsText, "\n"), core.ColorViolet, core.ColorWhite)
	}
	if m.status != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, " "+m.status+" ", core.ColorYellow)
	}
	return RenderScreen(m.screen)
}

// Session returns the simulated session.
func (m GameModel) Session() *dodger.Session {
	return m.loop.Session()
}

// Status returns the transient status line.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game. Back leaves the program like quit does.
func Run(opts GameOptions) error {
	opts.AutoStart = true
	p := tea.NewProgram(
		standaloneModel{NewGameModel(opts)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// standaloneModel quits when the game asks to go back to a menu.
type standaloneModel struct {
	game GameModel
}

func (s standaloneModel) Init() tea.Cmd { return s.game.Init() }

func (s standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.game.Update(msg)
	if g, ok := next.(GameModel); ok {
		s.game = g
	}
	if s.game.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}

func (s standaloneModel) View() string { return s.game.View() }
