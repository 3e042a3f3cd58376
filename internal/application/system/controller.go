package system

import (
	"fmt"
	"math"

	"github.com/younwookim/sam/internal/domain/entity"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

// PlayerController runs the player state machine and integrates its motion against the level
type PlayerController struct {
	config *config.PlayerConfig
	bullet config.BulletConfig
	level  *entity.Level
	player *entity.Player

	// Event callbacks
	OnBulletFired func(b *entity.Bullet)
}

// NewPlayerController creates a controller driving player through level
func NewPlayerController(cfg *config.GameConfig, level *entity.Level, player *entity.Player) *PlayerController {
	return &PlayerController{
		config: &cfg.Physics.Player,
		bullet: cfg.Entities.Bullet,
		level:  level,
		player: player,
	}
}

// Player returns the controlled player
func (c *PlayerController) Player() *entity.Player {
	return c.player
}

// ProcessAction applies one input action under the current state's rules.
// Illegal actions for the state are ignored.
func (c *PlayerController) ProcessAction(action entity.Action) {
	p := c.player

	switch p.State {
	case entity.StateStanding, entity.StateWalking:
		switch action {
		case entity.ActionMoveLeft:
			p.Facing = entity.FacingLeft
			c.transition(entity.StateWalking)
		case entity.ActionMoveRight:
			p.Facing = entity.FacingRight
			c.transition(entity.StateWalking)
		case entity.ActionJump:
			if c.OnSolidGround() {
				c.transition(entity.StateJumping)
			}
		case entity.ActionFire:
			if p.Ammo > 0 {
				c.transition(entity.StateFiring)
			}
		default:
			panic(fmt.Sprintf("system: unknown action %d", int(action)))
		}

	case entity.StateJumping, entity.StateFalling:
		switch action {
		case entity.ActionMoveLeft:
			p.Facing = entity.FacingLeft
			p.VX = c.config.MaxXVelocity
		case entity.ActionMoveRight:
			p.Facing = entity.FacingRight
			p.VX = c.config.MaxXVelocity
		case entity.ActionJump:
			// no double jump
		case entity.ActionFire:
			// no firing while still rising
			if p.State == entity.StateFalling && p.Ammo > 0 {
				c.transition(entity.StateFiring)
			}
		default:
			panic(fmt.Sprintf("system: unknown action %d", int(action)))
		}

	case entity.StateFiring:
		switch action {
		case entity.ActionMoveLeft:
			p.Facing = entity.FacingLeft
		case entity.ActionMoveRight:
			p.Facing = entity.FacingRight
		case entity.ActionJump, entity.ActionFire:
		default:
			panic(fmt.Sprintf("system: unknown action %d", int(action)))
		}

	default:
		panic(fmt.Sprintf("system: invalid player state %d", int(p.State)))
	}
}

// Tick advances the player by dt seconds.
// A zero delta changes nothing.
func (c *PlayerController) Tick(dt float64) {
	checkDelta(dt)
	if dt == 0 {
		return
	}

	p := c.player
	switch p.State {
	case entity.StateStanding:
		p.SelectAnimation()
		p.Frame = 0
		p.FrameElapsed = 0

	case entity.StateWalking:
		p.SelectAnimation()
		p.AdvanceFrame(dt, c.config.AnimationRate)
		c.moveHorizontal(dt)
		if c.OnSolidGround() {
			c.transition(entity.StateStanding)
		} else {
			// off a ledge the player drops straight down unless a move is held
			p.VX = 0
			c.transition(entity.StateFalling)
		}

	case entity.StateJumping, entity.StateFalling, entity.StateFiring:
		p.SelectAnimation()
		p.AdvanceFrame(dt, c.config.AnimationRate)
		c.moveVertical(dt)
		c.moveHorizontal(dt)

	default:
		panic(fmt.Sprintf("system: invalid player state %d", int(p.State)))
	}
}

// OnSolidGround reports whether the player stands on a tile solid on top
func (c *PlayerController) OnSolidGround() bool {
	p := c.player
	return OnSolidGround(c.level, p.X, p.Y, p.DrawWidth())
}

// CanMoveUp reports whether nothing blocks the player from above
func (c *PlayerController) CanMoveUp() bool {
	p := c.player
	return CanMoveUp(c.level, p.X, p.Y, p.DrawWidth())
}

// FireBullet spends one shot and launches a bullet beside the player on the facing side.
// The caller must check CanFireBullet first.
func (c *PlayerController) FireBullet() *entity.Bullet {
	p := c.player
	p.SpendBullet()

	half := float64(c.level.TileWidth) / 2
	var x float64
	if p.Facing == entity.FacingRight {
		x = p.X + float64(p.DrawWidth()) + half
	} else {
		x = p.X - float64(c.bullet.Width) - half
	}

	speed := c.bullet.SpeedTiles * float64(c.level.TileWidth)
	b := entity.NewBullet(int(math.Floor(x)), p.PixelY(), p.Facing, speed, c.bullet.Width, c.bullet.TileID)

	if c.OnBulletFired != nil {
		c.OnBulletFired(b)
	}
	return b
}

func (c *PlayerController) transition(to entity.PlayerState) {
	from := c.player.State
	if from == to {
		return
	}
	c.exitState(from)
	c.player.State = to
	c.enterState(to)
}

func (c *PlayerController) exitState(s entity.PlayerState) {
	switch s {
	case entity.StateFiring:
		c.player.Frame = 0
		c.player.FrameElapsed = 0
	}
}

func (c *PlayerController) enterState(s entity.PlayerState) {
	p := c.player

	switch s {
	case entity.StateStanding:
		// X keeps its sub-pixel remainder so held movement accumulates
		p.VX = 0
		p.VY = 0
		p.Y = math.Trunc(p.Y)
	case entity.StateWalking:
		p.VX = c.config.MaxXVelocity
	case entity.StateJumping:
		p.VY = -c.config.MaxYVelocity
		p.Truncate()
	case entity.StateFalling:
		p.VY = c.config.Acceleration
	case entity.StateFiring:
		p.Frame = 0
		p.FrameElapsed = 0
		p.SelectAnimation()
		if p.CanFireBullet() {
			c.FireBullet()
		}
	default:
		panic(fmt.Sprintf("system: invalid player state %d", int(s)))
	}
}

// checkDelta rejects frame deltas the simulation was never meant to see
func checkDelta(dt float64) {
	if dt < 0 || dt >= 1 {
		panic(fmt.Sprintf("system: frame delta %v out of range [0, 1)", dt))
	}
}
