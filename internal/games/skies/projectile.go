package skies

// ProjectilePhase is the lifecycle phase of the projectile.
type ProjectilePhase int

const (
	PhaseInactive   ProjectilePhase = iota // Hidden, waiting for fire input
	PhaseActivating                        // Fire accepted, launches on the next update
	PhaseTravelling                        // Visible and moving upward
)

// String returns a human-readable name for the phase.
func (p ProjectilePhase) String() string {
	switch p {
	case PhaseActivating:
		return "Activating"
	case PhaseTravelling:
		return "Travelling"
	default:
		return "Inactive"
	}
}

// Projectile is the player's single shot.
// Activated and Visible are never both true.
type Projectile struct {
	Entity
	Activated bool
	Visible   bool
}

// Phase reports the projectile's lifecycle phase.
func (p *Projectile) Phase() ProjectilePhase {
	switch {
	case p.Visible:
		return PhaseTravelling
	case p.Activated:
		return PhaseActivating
	default:
		return PhaseInactive
	}
}

// RequestFire arms the projectile. It is ignored while a shot is already
// in flight. Returns whether the request was accepted.
func (p *Projectile) RequestFire() bool {
	if p.Visible {
		return false
	}
	p.Activated = true
	return true
}

// launch moves an armed projectile to the firing origin and makes it visible.
func (p *Projectile) launch(x, y float64) {
	p.X, p.Y = x, y
	p.Activated = false
	p.Visible = true
}

// advance moves a visible projectile upward by amount.
// Returns true when it has left the top of the screen.
func (p *Projectile) advance(amount float64) bool {
	p.Dir.Up = true
	p.Move(amount)
	return p.Y <= -p.Height()
}

// reset hides the projectile and parks it at the firing origin.
func (p *Projectile) reset(x, y float64) {
	p.X, p.Y = x, y
	p.Visible = false
}
