package entity

// Object is anything occupying the level that is drawn from a single tile
type Object interface {
	// Tick advances the object's own state (animation, motion) by dt seconds
	Tick(dt float64)

	// TileID returns the atlas tile currently drawn for the object
	TileID() int

	// DrawWidth returns the width in unscaled pixels of the drawn tile
	DrawWidth() int

	// Position returns the top-left corner in unscaled pixels
	Position() (x, y float64)
}

// Interactive is a non-player object that reacts to collisions
type Interactive interface {
	Object

	// CollidedWith reacts to an overlap with other and reports whether the
	// object is consumed and must be removed from the simulation.
	CollidedWith(other Object, level *Level) bool
}

// Body is the position shared by every object.
// Coordinates are unscaled pixels; the display scale is applied only at render time.
type Body struct {
	X, Y float64
}

// Position returns the top-left corner in unscaled pixels
func (b *Body) Position() (x, y float64) {
	return b.X, b.Y
}

// PixelX returns the X position truncated to a whole pixel
func (b *Body) PixelX() int {
	return int(b.X)
}

// PixelY returns the Y position truncated to a whole pixel
func (b *Body) PixelY() int {
	return int(b.Y)
}

// SetPixelPos places the body on whole pixel coordinates
func (b *Body) SetPixelPos(x, y int) {
	b.X = float64(x)
	b.Y = float64(y)
}

// Truncate drops the sub-pixel part of both coordinates
func (b *Body) Truncate() {
	b.X = float64(int(b.X))
	b.Y = float64(int(b.Y))
}

// staticTile is the part of Object shared by single-tile, non-animated objects
type staticTile struct {
	Body
	tileID int
	width  int
}

func (s *staticTile) Tick(float64)   {}
func (s *staticTile) TileID() int    { return s.tileID }
func (s *staticTile) DrawWidth() int { return s.width }
