package skies

import "github.com/vovakirdan/azure-skies/internal/core"

// clampToScreen keeps the entity horizontally inside [0, screenW - width].
func clampToScreen(e *Entity, screenW float64) {
	e.X = core.ClampF(e.X, 0, screenW-e.Width())
}

// hitsWall reports whether the entity touches or crosses a side wall.
func hitsWall(e *Entity, screenW float64) bool {
	return e.X <= 0 || e.X >= screenW-e.Width()
}

// bounceOffWalls reverses an entity that reached a side wall and drops it
// one band lower. Both horizontal flags are negated whatever their values.
func bounceOffWalls(e *Entity, screenW, drop float64) bool {
	if !hitsWall(e, screenW) {
		return false
	}
	e.Dir.Left = !e.Dir.Left
	e.Dir.Right = !e.Dir.Right
	e.Y += drop
	return true
}

// reachedPlayer reports whether the enemy's bottom edge got down to the
// player's top edge.
func reachedPlayer(enemy, player *Entity) bool {
	return enemy.Y+enemy.Height() >= player.Y
}
