package skies

import "testing"

func newTestProjectile() Projectile {
	return Projectile{Entity: NewEntity(blockImage{w: 32, h: 32}, 0, 418)}
}

func TestProjectileLifecycle(t *testing.T) {
	p := newTestProjectile()
	if p.Phase() != PhaseInactive {
		t.Fatalf("new projectile phase = %v, expected Inactive", p.Phase())
	}

	if !p.RequestFire() {
		t.Fatal("fire should be accepted while inactive")
	}
	if p.Phase() != PhaseActivating {
		t.Fatalf("phase = %v, expected Activating", p.Phase())
	}

	p.launch(359, 386)
	if p.Phase() != PhaseTravelling || p.Activated {
		t.Fatalf("phase = %v activated=%v, expected Travelling and cleared", p.Phase(), p.Activated)
	}
	if p.X != 359 || p.Y != 386 {
		t.Errorf("launch position = (%v, %v), expected (359, 386)", p.X, p.Y)
	}

	p.reset(10, 20)
	if p.Phase() != PhaseInactive {
		t.Errorf("phase after reset = %v, expected Inactive", p.Phase())
	}
	if p.X != 10 || p.Y != 20 {
		t.Errorf("reset position = (%v, %v), expected (10, 20)", p.X, p.Y)
	}
}

func TestProjectileFireIgnoredWhileVisible(t *testing.T) {
	p := newTestProjectile()
	p.launch(100, 100)

	if p.RequestFire() {
		t.Error("fire should be rejected while a shot is in flight")
	}
	if p.Activated {
		t.Error("projectile must never be activated and visible at once")
	}
}

func TestProjectileAdvance(t *testing.T) {
	p := newTestProjectile()
	p.launch(100, 0)

	if p.advance(16) {
		t.Fatalf("projectile at y=%v should still be on screen", p.Y)
	}
	if p.Y != -16 || p.X != 100 {
		t.Errorf("position after advance = (%v, %v), expected (100, -16)", p.X, p.Y)
	}

	if !p.advance(16) {
		t.Errorf("projectile at y=%v is fully above the screen", p.Y)
	}
}

func TestProjectilePhaseString(t *testing.T) {
	if PhaseInactive.String() != "Inactive" || PhaseActivating.String() != "Activating" || PhaseTravelling.String() != "Travelling" {
		t.Error("unexpected phase names")
	}
}
