package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
)

// keyBinding maps a physical key to an action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings lists the window controls in polling order.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, core.ActionDashLeft},
	{ebiten.KeyA, core.ActionDashLeft},
	{ebiten.KeyH, core.ActionDashLeft},
	{ebiten.KeyArrowRight, core.ActionDashRight},
	{ebiten.KeyD, core.ActionDashRight},
	{ebiten.KeyL, core.ActionDashRight},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyK, core.ActionJump},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyC, core.ActionShare},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// actionForKey returns the action bound to k, or ActionNone.
func actionForKey(k ebiten.Key) core.Action {
	for _, b := range keyBindings {
		if b.key == k {
			return b.action
		}
	}
	return core.ActionNone
}

// pollInput collects the keys, clicks and touches that started this tick.
func (g *Game) pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Set(b.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.tap(&in, float64(x), float64(y))
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.tap(&in, float64(x), float64(y))
	}
	return in
}

// tap adds the action for a pointer press at device pixel (x, y).
func (g *Game) tap(in *core.InputFrame, x, y float64) {
	session := g.Session()
	action := dodger.TapAction(session.State(), session.World(), x, y, g.tapJump)
	if action != core.ActionNone {
		in.Set(action)
	}
}
