package dodger

import "github.com/vovakirdan/neon-dodger/internal/core"

// MapTap translates a pointer tap at (x, y) into a gameplay action.
// Taps in the top jumpFraction of the height jump; the rest dash toward
// the tapped half.
func MapTap(w World, x, y, jumpFraction float64) core.Action {
	if y < w.Height*jumpFraction {
		return core.ActionJump
	}
	if x < w.Width*0.5 {
		return core.ActionDashLeft
	}
	return core.ActionDashRight
}

// TapAction maps a tap for the given state. Any tap starts the game when
// it is not running; taps while paused are ignored.
func TapAction(state State, w World, x, y, jumpFraction float64) core.Action {
	switch state {
	case StateRunning:
		return MapTap(w, x, y, jumpFraction)
	case StatePaused:
		return core.ActionNone
	default:
		return core.ActionStart
	}
}
