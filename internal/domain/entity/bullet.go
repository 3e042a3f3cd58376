package entity

import "math"

// Bullet is a player-fired projectile flying horizontally at a constant speed
type Bullet struct {
	Body
	XReal  float64 // unrounded x; Body.X holds the rounded draw position
	PrevX  float64 // Body.X before the last Tick
	VX     float64
	Facing Facing
	Width  int
	Tile   int
}

// NewBullet creates a bullet at pixel coordinates x, y moving toward facing at speed pixels per second
func NewBullet(x, y int, facing Facing, speed float64, width, tileID int) *Bullet {
	b := &Bullet{
		XReal:  float64(x),
		PrevX:  float64(x),
		VX:     facing.Sign() * speed,
		Facing: facing,
		Width:  width,
		Tile:   tileID,
	}
	b.SetPixelPos(x, y)
	return b
}

// Tick moves the bullet along its flight line
func (b *Bullet) Tick(dt float64) {
	b.PrevX = b.X
	b.XReal += b.VX * dt
	b.X = math.Round(b.XReal)
}

func (b *Bullet) TileID() int    { return b.Tile }
func (b *Bullet) DrawWidth() int { return b.Width }

// LeadingEdge returns the pixel column of the side facing the flight direction
func (b *Bullet) LeadingEdge() int {
	if b.Facing == FacingRight {
		return b.PixelX() + b.Width - 1
	}
	return b.PixelX()
}

// PrevLeadingEdge returns the leading edge as it was before the last Tick
func (b *Bullet) PrevLeadingEdge() int {
	if b.Facing == FacingRight {
		return int(b.PrevX) + b.Width - 1
	}
	return int(b.PrevX)
}

// CollidedWith always consumes the bullet
func (b *Bullet) CollidedWith(Object, *Level) bool {
	return true
}
