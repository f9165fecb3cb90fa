package skies

import "testing"

func TestEntityMove(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantDX float64
		wantDY float64
	}{
		{"no flags", Direction{}, 0, 0},
		{"left", Direction{Left: true}, -8, 0},
		{"right", Direction{Right: true}, 8, 0},
		{"left and right cancel", Direction{Left: true, Right: true}, 0, 0},
		{"up", Direction{Up: true}, 0, -8},
		{"down", Direction{Down: true}, 0, 8},
		{"up and down cancel", Direction{Up: true, Down: true}, 0, 0},
		{"diagonal", Direction{Right: true, Up: true}, 8, -8},
		{"all four", Direction{Left: true, Right: true, Up: true, Down: true}, 0, 0},
		{"cancel x, move y", Direction{Left: true, Right: true, Down: true}, 0, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity(blockImage{w: 10, h: 10}, 100, 200)
			e.Dir = tc.dir
			e.Move(8)

			if e.X != 100+tc.wantDX {
				t.Errorf("X = %v, expected %v", e.X, 100+tc.wantDX)
			}
			if e.Y != 200+tc.wantDY {
				t.Errorf("Y = %v, expected %v", e.Y, 200+tc.wantDY)
			}
		})
	}
}

func TestEntitySizeFromImage(t *testing.T) {
	e := NewEntity(blockImage{w: 64, h: 32}, 5, 6)

	if e.Width() != 64 || e.Height() != 32 {
		t.Errorf("size = %vx%v, expected 64x32", e.Width(), e.Height())
	}

	e.Dir.Right = true
	e.Move(4)
	r := e.Rect()
	if r.X != 9 || r.Y != 6 || r.W != 64 || r.H != 32 {
		t.Errorf("Rect() = %+v after move", r)
	}
}
