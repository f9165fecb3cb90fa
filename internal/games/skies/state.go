package skies

import (
	"math/rand"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// World and tuning constants.
const (
	WorldWidth  = 750
	WorldHeight = 500

	BaseSpeed             = 8.0
	EnemySpeedFactor      = 0.5 // Enemies move at half the player's speed
	EnemyDropFactor       = 6   // Drop on wall bounce, in base speeds
	ProjectileSpeedFactor = 2

	EnemyCount     = 6
	PlayerStartX   = 343
	PlayerStartY   = 218 + 200
	EnemySpawnY    = 218 - 200
	EnemySpawnBand = 200 // Initial enemies start anywhere in [EnemySpawnY, EnemySpawnY+band]

	FireOffsetX = 16
	FireOffsetY = -32
)

// Sprites are the images entities are built from. Entity sizes are taken
// from them.
type Sprites struct {
	Player     core.Image
	Enemy      core.Image
	Projectile core.Image
	Background core.Image
}

// State is the whole mutable game state for one run. It is owned by a
// single goroutine and advanced with Step.
type State struct {
	Score    int
	GameOver bool
	Ticks    int

	Player     Entity
	Enemies    []Entity
	Laser      Projectile
	Background Entity

	rng *rand.Rand
}

// NewState builds the starting state. Enemy placement and headings are
// drawn from an RNG seeded with seed.
func NewState(sprites Sprites, seed int64) *State {
	s := &State{
		Player:     NewEntity(sprites.Player, PlayerStartX, PlayerStartY),
		Background: NewEntity(sprites.Background, 0, 0),
		Enemies:    make([]Entity, 0, EnemyCount),
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.Laser = Projectile{Entity: NewEntity(sprites.Projectile, 0, s.Player.Y)}

	for range EnemyCount {
		e := NewEntity(sprites.Enemy, PlayerStartX, EnemySpawnY)
		e.X = float64(s.randInt(0, WorldWidth-int(e.Width())))
		e.Y = float64(s.randInt(EnemySpawnY, EnemySpawnY+EnemySpawnBand))
		if s.rng.Intn(2) == 0 {
			e.Dir.Left = true
		} else {
			e.Dir.Right = true
		}
		s.Enemies = append(s.Enemies, e)
	}

	return s
}

// randInt returns a random integer in [lo, hi]. Collapses to lo when the
// range is empty.
func (s *State) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Status returns the outward-facing snapshot of the state.
func (s *State) Status() core.Status {
	return core.Status{
		Score:    s.Score,
		GameOver: s.GameOver,
		Ticks:    s.Ticks,
	}
}

// firingOrigin is where the projectile launches from and parks at.
func (s *State) firingOrigin() (float64, float64) {
	return s.Player.X + FireOffsetX, s.Player.Y + FireOffsetY
}

// Step applies one tick: input events first, then the update phase unless
// the round is over. Sounds raised during the tick are returned in order.
func Step(s *State, in core.Frame) core.StepResult {
	for _, e := range in.Events {
		s.handleEvent(e)
	}

	var sounds []core.Sound
	if !s.GameOver {
		sounds = s.update()
	}

	return core.StepResult{
		Status: s.Status(),
		Quit:   in.HasQuit(),
		Sounds: sounds,
	}
}

// handleEvent applies a single input event. Unknown keys are ignored.
func (s *State) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventKeyDown:
		switch e.Key {
		case core.KeyLeft:
			s.Player.Dir.Left = true
		case core.KeyRight:
			s.Player.Dir.Right = true
		case core.KeyFire:
			s.Laser.RequestFire()
		}
	case core.EventKeyUp:
		switch e.Key {
		case core.KeyLeft:
			s.Player.Dir.Left = false
		case core.KeyRight:
			s.Player.Dir.Right = false
		}
	}
}

// update runs the update phase of one tick.
func (s *State) update() []core.Sound {
	var sounds []core.Sound
	s.Ticks++

	s.Player.Move(BaseSpeed)
	clampToScreen(&s.Player, WorldWidth)

	for i := range s.Enemies {
		enemy := &s.Enemies[i]
		enemy.Move(BaseSpeed * EnemySpeedFactor)
		if !s.GameOver && reachedPlayer(enemy, &s.Player) {
			s.GameOver = true
			sounds = append(sounds, core.SoundPlayerExplosion)
		}
	}

	// The round ended this tick: nothing else moves or scores.
	if s.GameOver {
		return sounds
	}

	for i := range s.Enemies {
		bounceOffWalls(&s.Enemies[i], WorldWidth, BaseSpeed*EnemyDropFactor)
	}

	if s.Laser.Activated {
		s.Laser.launch(s.firingOrigin())
		sounds = append(sounds, core.SoundFire)
	}

	if s.Laser.Visible && s.Laser.advance(BaseSpeed*ProjectileSpeedFactor) {
		s.Laser.reset(s.firingOrigin())
	}

	if s.checkHit() >= 0 {
		sounds = append(sounds, core.SoundEnemyExplosion)
	}

	return sounds
}

// checkHit tests the visible projectile against every enemy in slice order.
// The first enemy hit is credited; the projectile is spent so later enemies
// are not checked. Returns the index of the enemy hit, or -1.
func (s *State) checkHit() int {
	for i := range s.Enemies {
		if !s.Laser.Visible {
			return -1
		}
		enemy := &s.Enemies[i]
		if !enemy.Rect().Intersects(s.Laser.Rect()) {
			continue
		}

		s.Laser.reset(s.firingOrigin())
		s.respawn(enemy)
		s.Score++
		return i
	}
	return -1
}

// respawn sends a destroyed enemy back to the spawn row at a random column.
// Its heading is kept.
func (s *State) respawn(enemy *Entity) {
	enemy.Y = EnemySpawnY
	enemy.X = float64(s.randInt(0, WorldWidth-int(enemy.Width())))
}
