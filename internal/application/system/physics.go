package system

import (
	"math"

	"github.com/younwookim/sam/internal/domain/entity"
)

// moveHorizontal moves the player along its facing at VX.
// Entering a column is refused when both rows the player spans are solid on
// the side being entered; a refused move stops the player where it is.
func (c *PlayerController) moveHorizontal(dt float64) {
	p := c.player
	if p.VX == 0 {
		return
	}

	dx := p.VX * dt
	width := p.DrawWidth()
	top := p.PixelY()
	bottom := top + c.level.TileHeight - 1

	var (
		curCol, newCol int
		side           entity.Solidity
	)
	if p.Facing == entity.FacingRight {
		curCol = c.level.ColumnAt(floor(p.X) + width - 1)
		newCol = c.level.ColumnAt(floor(p.X+dx) + width - 1)
		side = entity.SolidLeft
	} else {
		curCol = c.level.ColumnAt(floor(p.X))
		newCol = c.level.ColumnAt(floor(p.X - dx))
		side = entity.SolidRight
	}

	if newCol != curCol && c.blockedColumn(newCol, top, bottom, side) {
		p.VX = 0
		return
	}
	p.X += p.Facing.Sign() * dx
}

func (c *PlayerController) blockedColumn(col, top, bottom int, side entity.Solidity) bool {
	return c.level.Bounds(col, c.level.RowAt(top)).Has(side) &&
		c.level.Bounds(col, c.level.RowAt(bottom)).Has(side)
}

// moveVertical applies VY to the player, ascending or descending
func (c *PlayerController) moveVertical(dt float64) {
	if c.player.VY < 0 {
		c.ascend(dt)
	} else {
		c.descend(dt)
	}
}

// ascend rises by VY while gravity pulls at half strength.
// When the ceiling is closer than the full step, the player rises to the
// highest whole pixel still clear and starts falling.
func (c *PlayerController) ascend(dt float64) {
	p := c.player
	target := p.Y + p.VY*dt

	if c.clearAbove(target) {
		p.Y = target
		p.VY += c.config.Acceleration / 2 * dt
		if p.VY >= 0 {
			c.transition(entity.StateFalling)
		}
		return
	}

	for ny := floor(target) + 1; float64(ny) <= p.Y; ny++ {
		if c.clearAbove(float64(ny)) {
			p.Y = float64(ny)
			break
		}
	}
	c.transition(entity.StateFalling)
}

// clearAbove reports whether the player's top can move from its current
// height up to y without entering a tile solid on the bottom.
// Each row crossed is checked the way CanMoveUp checks the row above a body.
func (c *PlayerController) clearAbove(y float64) bool {
	p := c.player
	th := c.level.TileHeight

	for row := c.level.RowAt(floor(y)); row < c.level.RowAt(floor(p.Y)); row++ {
		if !CanMoveUp(c.level, p.X, float64((row+1)*th), p.DrawWidth()) {
			return false
		}
	}
	return true
}

// descend falls by VY, speeding up to terminal velocity.
// Landing snaps the player onto the first tile below that is solid on top.
func (c *PlayerController) descend(dt float64) {
	p := c.player
	target := p.Y + p.VY*dt

	if row, hit := c.groundBelow(target); hit {
		p.Y = float64((row - 1) * c.level.TileHeight)
		c.land()
		return
	}

	p.Y = target
	if c.OnSolidGround() {
		c.land()
		return
	}
	p.VY = math.Min(p.VY+c.config.Acceleration*dt, c.config.TerminalVelocity)
}

// groundBelow returns the first row the player's bottom edge would enter on
// its way down to y that is solid on top.
// A partly covered pixel row counts as entered.
func (c *PlayerController) groundBelow(y float64) (int, bool) {
	p := c.player
	th := c.level.TileHeight
	left := c.level.ColumnAt(p.PixelX())
	right := c.level.ColumnAt(p.PixelX() + p.DrawWidth() - 1)

	from := c.level.RowAt(ceil(p.Y)+th-1) + 1
	to := c.level.RowAt(ceil(y) + th - 1)
	for row := from; row <= to; row++ {
		if c.level.Bounds(left, row).Has(entity.SolidTop) ||
			c.level.Bounds(right, row).Has(entity.SolidTop) {
			return row, true
		}
	}
	return 0, false
}

func (c *PlayerController) land() {
	p := c.player
	p.VY = 0
	if p.VX != 0 {
		c.transition(entity.StateWalking)
	} else {
		c.transition(entity.StateStanding)
	}
}

func floor(v float64) int {
	return int(math.Floor(v))
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}
