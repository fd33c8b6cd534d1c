package crossroad

import "github.com/vovakirdan/tui-crossroad/internal/core"

// Collides reports whether a car hits the player, forgiving tol pixels of
// edge contact. See core.Overlaps for the exact predicate.
func Collides(o *Obstacle, p *Player, tol float64) bool {
	return core.Overlaps(o.Rect(), p.Rect(), tol)
}
