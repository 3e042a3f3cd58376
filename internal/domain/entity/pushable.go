package entity

// Pushable is a block the player can shove sideways and stand on.
//
// The block marks the tiles under it solid on top. It remembers the
// previous solidity of those tiles and puts it back when it moves away,
// so ground it passes over is left as it was.
type Pushable struct {
	staticTile
	savedLeft  Solidity
	savedRight Solidity
}

// NewPushable places a block on pixel coordinates x, y and claims the tiles under it
func NewPushable(x, y, tileID, width int, level *Level) *Pushable {
	p := &Pushable{staticTile: staticTile{tileID: tileID, width: width}}
	p.SetPixelPos(x, y)
	p.claim(level)
	return p
}

// CollidedWith moves the block away from the player when the way is clear.
// The block is never consumed.
func (p *Pushable) CollidedWith(other Object, level *Level) bool {
	player, ok := other.(*Player)
	if !ok {
		return false
	}

	oldX := p.PixelX()
	row := level.RowAt(p.PixelY())
	newX := p.X
	moved := false

	switch {
	case player.X < p.X: // pushing right
		col := level.ColumnAt(oldX + p.width)
		if !level.Bounds(col, row).Has(SolidLeft) {
			newX = player.X + float64(player.DrawWidth())
			moved = true
		}
	case player.X > p.X: // pushing left
		col := level.ColumnAt(oldX - 1)
		if !level.Bounds(col, row).Has(SolidRight) {
			newX = player.X - float64(p.width)
			moved = true
		}
	}

	if moved {
		p.release(level)
		p.X = newX
		p.claim(level)
	}
	return false
}

func (p *Pushable) columns(level *Level) (left, right, row int) {
	x := p.PixelX()
	return level.ColumnAt(x), level.ColumnAt(x + p.width - 1), level.RowAt(p.PixelY())
}

func (p *Pushable) claim(level *Level) {
	left, right, row := p.columns(level)
	p.savedLeft = level.Bounds(left, row)
	p.savedRight = level.Bounds(right, row)
	level.SetBounds(left, row, p.savedLeft|SolidTop)
	level.SetBounds(right, row, p.savedRight|SolidTop)
}

func (p *Pushable) release(level *Level) {
	left, right, row := p.columns(level)
	level.SetBounds(right, row, p.savedRight)
	level.SetBounds(left, row, p.savedLeft)
}
