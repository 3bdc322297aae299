package dodger

import "github.com/vovakirdan/neon-dodger/internal/core"

// FirstCollision returns the index of the first obstacle, in slice order,
// that overlaps the player rectangle, or -1 when nothing is hit.
func FirstCollision(player core.Rect, obstacles []Obstacle) int {
	for i, o := range obstacles {
		if player.Intersects(o.Rect()) {
			return i
		}
	}
	return -1
}

// AllCollisions returns the indices of every obstacle overlapping the player.
func AllCollisions(player core.Rect, obstacles []Obstacle) []int {
	var hits []int
	for i, o := range obstacles {
		if player.Intersects(o.Rect()) {
			hits = append(hits, i)
		}
	}
	return hits
}
