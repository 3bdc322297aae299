// Package dodger implements Neon Dodger, a three-lane endless dodging game.
// The player square dashes between lanes and jumps over obstacles that
// scroll in from the right while the difficulty ramps up with time.
//
// The package is frontend agnostic: a Session is stepped with a time delta
// and a core.InputFrame and exposes immutable Snapshots for rendering.
package dodger

import "fmt"

const (
	// ID identifies the game in score storage.
	ID = "dodger"
	// Title is the display name.
	Title = "Neon Dodger"
)

// ControlsText is the controls help shown by frontends.
const ControlsText = `Controls:
  Left / Right   Dash between lanes
  Up / Space     Jump
  P              Pause
  R              Restart

Tip: Gates require a jump, Bars require shifting lanes.
The speed ramps up the longer you survive. Good luck!`

// ShareText returns the share message for a score.
func ShareText(score int) string {
	return fmt.Sprintf("I scored %d in %s!", score, Title)
}
