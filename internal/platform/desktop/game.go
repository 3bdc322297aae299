// Package desktop runs Neon Dodger in a native window with Ebiten.
package desktop

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
	"github.com/vovakirdan/neon-dodger/internal/storage"
)

// Options configures a window game.
type Options struct {
	Dodger  config.DodgerConfig
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the window size in logical pixels
	Preset  config.DifficultyPreset
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional

	// Clock overrides the frame clock, for tests.
	Clock dodger.Clock
}

// Game implements ebiten.Game on top of a dodger.Loop.
type Game struct {
	loop    *dodger.Loop
	store   *storage.Store
	logger  *log.Logger
	preset  config.DifficultyPreset
	seed    int64
	tapJump float64
	scale   float64

	width, height int // Last layout size in device pixels
	snap          dodger.Snapshot
	status        string
	touches       []ebiten.TouchID

	copyText func(string) error
}

// NewGame creates a window game in the idle state.
func NewGame(opts Options) *Game {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	scale := rt.Scale
	if scale <= 0 {
		scale = 1
	}
	if maxScale := opts.Dodger.World.MaxScale; maxScale > 0 && scale > maxScale {
		scale = maxScale
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var best dodger.BestStore = &dodger.MemoryBest{}
	if opts.Store != nil {
		best = storage.NewBestScore(opts.Store, storage.DefaultBestKey)
	}

	width := int(float64(rt.ScreenW) * scale)
	height := int(float64(rt.ScreenH) * scale)
	vp := dodger.Viewport{Width: float64(width), Height: float64(height), Scale: scale}
	session := dodger.NewSession(opts.Dodger, vp, rt.Seed, best)
	if err := session.Err(); err != nil {
		logger.Warn("could not load best score", "error", err)
	}

	return &Game{
		loop:     dodger.NewLoop(session, opts.Clock),
		store:    opts.Store,
		logger:   logger,
		preset:   opts.Preset,
		seed:     rt.Seed,
		tapJump:  opts.Dodger.Input.TapJumpFraction,
		scale:    scale,
		width:    width,
		height:   height,
		snap:     session.Snapshot(),
		copyText: clipboard.WriteAll,
	}
}

// Update polls input and advances the loop by one frame.
func (g *Game) Update() error {
	return g.update(g.pollInput())
}

// update applies one frame of input. Quit ends the program.
func (g *Game) update(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionShare) {
		g.share()
	}
	if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
		g.status = ""
	}

	before := g.Session().State()
	snap, _ := g.loop.Frame(in)
	g.snap = snap

	if before != dodger.StateRunning && snap.State == dodger.StateRunning {
		g.logger.Debug("run started", "seed", g.seed, "difficulty", g.preset)
	}
	if before != dodger.StateGameOver && snap.State == dodger.StateGameOver {
		g.onGameOver(snap)
	}
	return nil
}

// onGameOver records the finished run.
func (g *Game) onGameOver(snap dodger.Snapshot) {
	duration := time.Duration(snap.Elapsed * float64(time.Second))
	g.logger.Info("game over", "score", snap.Score, "best", snap.Best, "duration", duration.Round(time.Millisecond))

	if err := g.Session().Err(); err != nil {
		g.logger.Warn("could not save best score", "error", err)
	}
	if g.store == nil || snap.Score <= 0 {
		return
	}
	if _, err := g.store.RecordRun(snap.Score, string(g.preset), duration); err != nil {
		g.logger.Warn("could not record run", "error", err)
	}
}

// share copies the share text after a run.
func (g *Game) share() {
	session := g.Session()
	if session.State() != dodger.StateGameOver {
		return
	}

	text := dodger.ShareText(session.Score())
	if err := g.copyText(text); err != nil {
		g.logger.Warn("clipboard unavailable", "error", err)
		g.status = text
		return
	}
	g.status = "Copied to clipboard!"
}

// Layout renders at device resolution and resizes the world when the
// window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(float64(outsideWidth) * g.scale)
	h := int(float64(outsideHeight) * g.scale)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.Session().Resize(float64(w), float64(h))
		g.snap = g.Session().Snapshot()
	}
	return w, h
}

// Session returns the simulated session.
func (g *Game) Session() *dodger.Session {
	return g.loop.Session()
}

// Status returns the transient status line.
func (g *Game) Status() string {
	return g.status
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Runtime.Scale <= 0 {
		opts.Runtime.Scale = ebiten.Monitor().DeviceScaleFactor()
	}
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	ebiten.SetWindowTitle(dodger.Title)
	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(opts))
}
