package entity

import "fmt"

// PlayerState is the state of the player state machine
type PlayerState int

const (
	StateStanding PlayerState = iota
	StateWalking
	StateJumping
	StateFalling
	StateFiring

	playerStateCount
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case StateStanding:
		return "Standing"
	case StateWalking:
		return "Walking"
	case StateJumping:
		return "Jumping"
	case StateFalling:
		return "Falling"
	case StateFiring:
		return "Firing"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined states
func (s PlayerState) Valid() bool {
	return s >= StateStanding && s < playerStateCount
}

// PlayerAnimation selects one animation strip of the player sprite
type PlayerAnimation int

const (
	AnimStandingLeft PlayerAnimation = iota
	AnimStandingRight
	AnimJumpingLeft
	AnimJumpingRight
	AnimShootingLeft
	AnimShootingRight

	playerAnimationCount
)

// FramesPerAnimation is the length of every player animation strip
const FramesPerAnimation = 4

var playerFrames = [playerAnimationCount][FramesPerAnimation]int{
	AnimStandingLeft:  {389, 390, 391, 392},
	AnimStandingRight: {366, 367, 368, 369},
	AnimJumpingLeft:   {436, 436, 436, 436},
	AnimJumpingRight:  {435, 435, 435, 435},
	AnimShootingLeft:  {413, 415, 415, 413},
	AnimShootingRight: {412, 414, 414, 412},
}

var playerWidths = [playerAnimationCount][FramesPerAnimation]int{
	AnimStandingLeft:  {22, 22, 22, 22},
	AnimStandingRight: {22, 22, 22, 22},
	AnimJumpingLeft:   {22, 22, 22, 22},
	AnimJumpingRight:  {22, 22, 22, 22},
	AnimShootingLeft:  {20, 32, 32, 20},
	AnimShootingRight: {20, 32, 32, 20},
}

// Player is the controllable character.
// Velocities are unscaled pixels per second; a negative VY moves up.
// VX is a speed: the direction comes from Facing.
type Player struct {
	Body
	VX, VY float64
	Facing Facing
	State  PlayerState

	Animation    PlayerAnimation
	Frame        int
	FrameElapsed float64 // seconds since the frame last changed

	Ammo             int
	BulletsFlying    int
	MaxBulletsFlying int
	Score            int
	Lives            int
}

// NewPlayer creates a standing, right-facing player at pixel coordinates x, y
func NewPlayer(x, y int, ammo, lives, maxBulletsFlying int) *Player {
	p := &Player{
		Ammo:             ammo,
		Lives:            lives,
		MaxBulletsFlying: maxBulletsFlying,
	}
	p.Reset(x, y)
	return p
}

// Reset places the player on pixel coordinates x, y and clears all motion.
// Ammo, score and lives are left alone.
func (p *Player) Reset(x, y int) {
	p.SetPixelPos(x, y)
	p.VX = 0
	p.VY = 0
	p.Facing = FacingRight
	p.State = StateStanding
	p.Animation = AnimStandingRight
	p.Frame = 0
	p.FrameElapsed = 0
	p.BulletsFlying = 0
}

// Tick is a no-op: the player is driven by the controller, which owns the level queries
func (p *Player) Tick(float64) {}

// TileID returns the tile of the current animation frame
func (p *Player) TileID() int {
	return playerFrames[p.Animation][p.Frame]
}

// DrawWidth returns the width of the current animation frame
func (p *Player) DrawWidth() int {
	return playerWidths[p.Animation][p.Frame]
}

// CanFireBullet reports whether a unit of ammo is available and the
// in-flight bullet limit has not been reached
func (p *Player) CanFireBullet() bool {
	return p.Ammo > 0 && p.BulletsFlying < p.MaxBulletsFlying
}

// SpendBullet consumes one unit of ammo for a bullet leaving the gun.
// Calling it when CanFireBullet is false is a programming error.
func (p *Player) SpendBullet() {
	if !p.CanFireBullet() {
		panic(fmt.Sprintf("entity: fire with ammo=%d flying=%d/%d", p.Ammo, p.BulletsFlying, p.MaxBulletsFlying))
	}
	p.Ammo--
	p.BulletsFlying++
}

// BulletDied releases one in-flight bullet slot
func (p *Player) BulletDied() {
	if p.BulletsFlying <= 0 {
		panic("entity: bullet died with no bullets flying")
	}
	p.BulletsFlying--
}

// AddAmmo grants extra shots
func (p *Player) AddAmmo(shots int) {
	p.Ammo += shots
}

// AddScore grants points
func (p *Player) AddScore(points int) {
	p.Score += points
}

// SelectAnimation picks the strip for the current state and facing
func (p *Player) SelectAnimation() {
	right := p.Facing == FacingRight
	switch p.State {
	case StateStanding, StateWalking:
		p.Animation = pick(right, AnimStandingRight, AnimStandingLeft)
	case StateJumping, StateFalling:
		p.Animation = pick(right, AnimJumpingRight, AnimJumpingLeft)
	case StateFiring:
		p.Animation = pick(right, AnimShootingRight, AnimShootingLeft)
	default:
		panic(fmt.Sprintf("entity: invalid player state %d", int(p.State)))
	}
}

// AdvanceFrame moves the animation timer forward by dt seconds,
// stepping to the next frame every rate seconds.
func (p *Player) AdvanceFrame(dt, rate float64) {
	p.FrameElapsed += dt
	if p.FrameElapsed >= rate {
		p.Frame = (p.Frame + 1) % FramesPerAnimation
		p.FrameElapsed = 0
	}
}

func pick(cond bool, a, b PlayerAnimation) PlayerAnimation {
	if cond {
		return a
	}
	return b
}
