package skies

import "github.com/vovakirdan/azure-skies/internal/core"

// Direction holds an entity's four independent direction flags.
// Opposing flags may both be set; they cancel out.
type Direction struct {
	Left, Right, Up, Down bool
}

// axis returns the sign of motion along one axis for a pair of opposing flags.
func axis(negative, positive bool) float64 {
	switch {
	case negative == positive:
		return 0
	case negative:
		return -1
	default:
		return 1
	}
}

// Entity is a sprite placed in the world. Its size comes from its image
// and never changes after construction.
type Entity struct {
	X, Y float64
	Dir  Direction

	img  core.Image
	w, h float64
}

// NewEntity creates an entity at (x, y) sized after img.
func NewEntity(img core.Image, x, y float64) Entity {
	return Entity{
		X:   x,
		Y:   y,
		img: img,
		w:   float64(img.Width()),
		h:   float64(img.Height()),
	}
}

// Width returns the entity width in world units.
func (e *Entity) Width() float64 {
	return e.w
}

// Height returns the entity height in world units.
func (e *Entity) Height() float64 {
	return e.h
}

// Image returns the sprite drawn for this entity.
func (e *Entity) Image() core.Image {
	return e.img
}

// Move displaces the entity by amount along each axis with exactly one
// direction flag set.
func (e *Entity) Move(amount float64) {
	e.X += axis(e.Dir.Left, e.Dir.Right) * amount
	e.Y += axis(e.Dir.Up, e.Dir.Down) * amount
}

// Rect returns the entity's bounding box at its current position.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.w, e.h)
}

// Draw paints the entity onto the canvas at its current position.
func (e *Entity) Draw(c *core.Canvas) {
	c.DrawImage(e.img, e.X, e.Y)
}
