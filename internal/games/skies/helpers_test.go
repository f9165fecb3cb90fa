package skies

import "github.com/vovakirdan/azure-skies/internal/core"

// blockImage is an opaque rectangle used in place of decoded sprites.
type blockImage struct {
	w, h int
	col  core.Color
}

func (b blockImage) Width() int                        { return b.w }
func (b blockImage) Height() int                       { return b.h }
func (b blockImage) Pixel(x, y int) (core.Color, bool) { return b.col, true }

func testSprites() Sprites {
	return Sprites{
		Player:     blockImage{w: 64, h: 64, col: core.ColorWhite},
		Enemy:      blockImage{w: 64, h: 64, col: core.RGB(0, 255, 0)},
		Projectile: blockImage{w: 32, h: 32, col: core.ColorRed},
		Background: blockImage{w: WorldWidth, h: WorldHeight, col: core.RGB(128, 128, 128)},
	}
}

// newTestState returns a seeded state with the given enemies in place of
// the random ones.
func newTestState(enemies ...Entity) *State {
	s := NewState(testSprites(), 42)
	s.Enemies = enemies
	return s
}

// enemyAt builds a 64x64 enemy at (x, y).
func enemyAt(x, y float64, dir Direction) Entity {
	e := NewEntity(blockImage{w: 64, h: 64}, x, y)
	e.Dir = dir
	return e
}

func frame(events ...core.Event) core.Frame {
	return core.NewFrame(events...)
}
