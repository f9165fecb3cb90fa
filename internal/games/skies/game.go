// Package skies implements Azure Skies, a single-screen shooter: the player
// slides along the bottom, fires one laser at a time, and must stop the
// zig-zagging saucers before they reach its row.
package skies

import (
	"fmt"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// HUD layout in world coordinates.
const (
	scoreX, scoreY       = 10, 10
	fpsX, fpsY           = WorldWidth - 170, 10
	gameOverX, gameOverY = 266, 232

	// FPSWarnMargin is how far below the target rate the FPS counter turns red.
	FPSWarnMargin = 10
)

// SkyColor is painted behind everything, under the background sprite.
var SkyColor = core.RGB(20, 35, 80)

// Game drives a State for the terminal platform.
type Game struct {
	sprites Sprites
	state   *State
	runtime core.RuntimeConfig
	canvas  *core.Canvas
}

// New creates a game that builds its entities from sprites.
// Reset must be called before the first Step.
func New(sprites Sprites) *Game {
	return &Game{
		sprites: sprites,
		canvas:  core.NewCanvas(0, 0, WorldWidth, WorldHeight),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skies"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Azure Skies"
}

// Reset starts a fresh run seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.state = NewState(g.sprites, runtime.Seed)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.Frame) core.StepResult {
	return Step(g.state, in)
}

// State exposes the underlying state.
func (g *Game) State() *State {
	return g.state
}

// Status returns the current score and game-over flag.
func (g *Game) Status() core.Status {
	return g.state.Status()
}

// Render draws the current frame into dst. fps is the measured frame rate
// shown in the HUD.
func (g *Game) Render(dst *core.Screen, fps float64) {
	s := g.state

	g.canvas.Resize(dst.Width(), dst.Height())
	g.canvas.Fill(SkyColor)
	s.Background.Draw(g.canvas)
	s.Player.Draw(g.canvas)

	if !s.GameOver {
		for i := range s.Enemies {
			s.Enemies[i].Draw(g.canvas)
		}
		if s.Laser.Visible {
			s.Laser.Draw(g.canvas)
		}
	}

	g.canvas.Compose(dst)

	col, row := g.canvas.CellAt(scoreX, scoreY)
	dst.DrawText(col, row, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)

	fpsColor := core.ColorWhite
	if fps < float64(g.runtime.TickRate-FPSWarnMargin) {
		fpsColor = core.ColorRed
	}
	col, row = g.canvas.CellAt(fpsX, fpsY)
	dst.DrawText(col, row, fmt.Sprintf("FPS: %.0f", fps), fpsColor)

	if s.GameOver {
		col, row = g.canvas.CellAt(gameOverX, gameOverY)
		dst.DrawText(col, row, "Game Over!", core.ColorWhite)
	}
}
