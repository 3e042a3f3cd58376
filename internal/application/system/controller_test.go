package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sam/internal/domain/entity"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

func createTestGameConfig() *config.GameConfig {
	physics := config.Defaults()
	entities := config.DefaultEntities()
	return &config.GameConfig{Physics: &physics, Entities: &entities}
}

var testLegend = map[string]config.CellConfig{
	"#": {Mid: intPtr(17), Bounds: []string{"all"}},
	"=": {Mid: intPtr(18), Bounds: []string{"top"}},
	"L": {Bounds: []string{"left"}},
	"S": {Code: "spawn"},
	"X": {Code: "death"},
	"i": {Code: "invisible"},
	"g": {Mid: intPtr(52), Code: "glasses"},
	"a": {Mid: intPtr(354), Code: "ammo"},
	"s": {Code: "satellite"},
	"p": {Mid: intPtr(56), Code: "pushable"},
}

// createTestLevel builds a level of 32px tiles from rows of legend characters
func createTestLevel(rows ...string) *entity.Level {
	cfg := &config.LevelConfig{
		Name:   "test",
		Width:  len(rows[0]),
		Height: len(rows),
		Legend: testLegend,
		Rows:   rows,
	}
	return LoadLevel(cfg, config.Defaults().Display)
}

func createTestController(level *entity.Level, x, y, ammo int) *PlayerController {
	player := entity.NewPlayer(x, y, ammo, 3, 1)
	return NewPlayerController(createTestGameConfig(), level, player)
}

func boxLevel() *entity.Level {
	return createTestLevel(
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	)
}

func TestPlayerController_Jump(t *testing.T) {
	t.Run("grounded jump", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 96, 0)
		require.True(t, c.OnSolidGround())

		c.ProcessAction(entity.ActionJump)

		assert.Equal(t, entity.StateJumping, c.Player().State)
		assert.Equal(t, -80.0, c.Player().VY)
	})

	t.Run("airborne jump refused", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 64, 0)
		require.False(t, c.OnSolidGround())

		c.ProcessAction(entity.ActionJump)

		assert.Equal(t, entity.StateStanding, c.Player().State)
		assert.Zero(t, c.Player().VY)
	})

	t.Run("no double jump", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 96, 0)
		c.ProcessAction(entity.ActionJump)
		c.Tick(0.25)
		vy := c.Player().VY

		c.ProcessAction(entity.ActionJump)

		assert.Equal(t, entity.StateJumping, c.Player().State)
		assert.Equal(t, vy, c.Player().VY)
	})
}

func TestPlayerController_TickZeroDelta(t *testing.T) {
	c := createTestController(boxLevel(), 32, 96, 0)
	c.ProcessAction(entity.ActionMoveRight)
	p := c.Player()
	before := *p

	c.Tick(0)

	assert.Equal(t, before.X, p.X)
	assert.Equal(t, before.Y, p.Y)
	assert.Equal(t, before.Frame, p.Frame)
	assert.Equal(t, before.State, p.State)
}

func TestPlayerController_TickDeltaOutOfRange(t *testing.T) {
	c := createTestController(boxLevel(), 32, 96, 0)

	assert.Panics(t, func() { c.Tick(1) })
	assert.Panics(t, func() { c.Tick(-0.01) })
	assert.NotPanics(t, func() { c.Tick(0.99) })
}

func TestPlayerController_Walk(t *testing.T) {
	tests := []struct {
		name   string
		action entity.Action
		startX int
		wantX  float64
		facing entity.Facing
	}{
		{"right into open column", entity.ActionMoveRight, 32, 48, entity.FacingRight},
		{"left into open column", entity.ActionMoveLeft, 72, 56, entity.FacingLeft},
		{"right into wall", entity.ActionMoveRight, 104, 104, entity.FacingRight},
		{"left into wall", entity.ActionMoveLeft, 40, 40, entity.FacingLeft},
		{"right within column", entity.ActionMoveRight, 44, 60, entity.FacingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestController(boxLevel(), tt.startX, 96, 0)

			c.ProcessAction(tt.action)
			assert.Equal(t, entity.StateWalking, c.Player().State)
			assert.Equal(t, 64.0, c.Player().VX)

			c.Tick(0.25)

			assert.Equal(t, tt.wantX, c.Player().X)
			assert.Equal(t, tt.facing, c.Player().Facing)
			assert.Equal(t, entity.StateStanding, c.Player().State)
			assert.Zero(t, c.Player().VX)
		})
	}
}

func TestPlayerController_WalkDistance(t *testing.T) {
	level := createTestLevel(
		"############",
		"#          #",
		"############",
	)

	tests := []struct {
		name  string
		ticks int
		dt    float64
		wantX float64
	}{
		{"whole pixel steps", 10, 0.25, 32 + 10*64*0.25},
		{"one second at 60 fps", 60, 1.0 / 60, 96},
		{"one second at 144 fps", 144, 1.0 / 144, 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestController(level, 32, 32, 0)

			for i := 0; i < tt.ticks; i++ {
				c.ProcessAction(entity.ActionMoveRight)
				c.Tick(tt.dt)
			}

			assert.InDelta(t, tt.wantX, c.Player().X, 1e-9)
			assert.Equal(t, 32.0, c.Player().Y)
			assert.Equal(t, entity.StateStanding, c.Player().State)
		})
	}
}

func TestPlayerController_HorizontalStraddlingRows(t *testing.T) {
	level := createTestLevel(
		"######",
		"#    #",
		"#   L#",
		"#    #",
		"######",
	)

	t.Run("one solid row lets the player through", func(t *testing.T) {
		c := createTestController(level, 104, 80, 0)
		c.Player().VX = 64

		c.moveHorizontal(0.25)

		assert.Equal(t, 120.0, c.Player().X)
		assert.Equal(t, 64.0, c.Player().VX)
	})

	t.Run("both rows solid stops the player", func(t *testing.T) {
		c := createTestController(level, 104, 64, 0)
		c.Player().VX = 64

		c.moveHorizontal(0.25)

		assert.Equal(t, 104.0, c.Player().X)
		assert.Zero(t, c.Player().VX)
	})
}

func TestPlayerController_WalkOffLedge(t *testing.T) {
	level := createTestLevel(
		"########",
		"#      #",
		"#S     #",
		"####   #",
		"#      #",
		"########",
	)
	c := createTestController(level, 32, 64, 0)
	p := c.Player()

	ticks := 0
	for p.State != entity.StateFalling {
		require.Less(t, ticks, 20, "never left the ledge")
		c.ProcessAction(entity.ActionMoveRight)
		c.Tick(0.25)
		ticks++
	}
	assert.Equal(t, 6, ticks)
	assert.Equal(t, 128.0, p.X)
	assert.Equal(t, 64.0, p.Y)

	for p.State == entity.StateFalling {
		require.Less(t, ticks, 40, "never landed")
		c.Tick(0.25)
		ticks++
	}
	assert.Equal(t, 128.0, p.X, "nothing held, so it drops straight down")
	assert.Equal(t, 128.0, p.Y)
	assert.Zero(t, p.VY)
	assert.Zero(t, p.VX)
	assert.Equal(t, entity.StateStanding, p.State)
	assert.True(t, c.OnSolidGround())
}

func TestPlayerController_WalkOffLedgeHoldingMove(t *testing.T) {
	level := createTestLevel(
		"########",
		"#      #",
		"#S     #",
		"####   #",
		"#      #",
		"########",
	)
	c := createTestController(level, 32, 64, 0)
	p := c.Player()

	for i := 0; i < 6; i++ {
		c.ProcessAction(entity.ActionMoveRight)
		c.Tick(0.25)
	}
	require.Equal(t, entity.StateFalling, p.State)
	require.Zero(t, p.VX)

	c.ProcessAction(entity.ActionMoveRight)
	assert.Equal(t, 64.0, p.VX, "a held move still steers the fall")
	c.Tick(0.25)
	assert.Equal(t, 144.0, p.X)
}

func TestPlayerController_ClearAbove(t *testing.T) {
	level := createTestLevel(
		"######",
		"#  ###",
		"#    #",
		"#    #",
		"######",
	)

	tests := []struct {
		name   string
		x, y   int
		target float64
		want   bool
	}{
		{"one row, open", 32, 96, 95, true},
		{"one row, ceiling", 96, 64, 63, false},
		{"one row, right edge under ceiling", 80, 64, 63, false},
		{"two rows, ceiling in the second", 96, 96, 60, false},
		{"two rows, open", 32, 96, 40, true},
		{"within the same row", 96, 70, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestController(level, tt.x, tt.y, 0)
			assert.Equal(t, tt.want, c.clearAbove(tt.target))
			if float64(tt.y)-tt.target == 1 {
				assert.Equal(t, c.CanMoveUp(), c.clearAbove(tt.target))
			}
		})
	}
}

func TestPlayerController_JumpIntoCeiling(t *testing.T) {
	level := createTestLevel(
		"#####",
		"#   #",
		"#   #",
		"#####",
	)
	c := createTestController(level, 32, 64, 0)
	p := c.Player()

	c.ProcessAction(entity.ActionJump)
	c.Tick(0.25)
	assert.Equal(t, 44.0, p.Y)
	assert.Equal(t, -70.0, p.VY)
	assert.Equal(t, entity.StateJumping, p.State)

	c.Tick(0.25)
	assert.Equal(t, 32.0, p.Y)
	assert.Equal(t, entity.StateFalling, p.State)
	assert.Equal(t, 80.0, p.VY)

	c.Tick(0.25)
	c.Tick(0.25)
	assert.Equal(t, 64.0, p.Y)
	assert.Equal(t, entity.StateStanding, p.State)
}

func TestPlayerController_AscentNearCeiling(t *testing.T) {
	// ceiling row 0 ends at y=32; the player's top must never pass it
	level := createTestLevel(
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	)

	for y0 := 32; y0 <= 64; y0++ {
		for _, dy := range []float64{0.5, 1, 5.5, 31, 32.75, 40} {
			c := createTestController(level, 32, y0, 0)
			p := c.Player()
			p.State = entity.StateJumping
			p.VY = -dy / 0.5

			c.ascend(0.5)

			target := float64(y0) - dy
			if target >= 32 {
				assert.Equal(t, target, p.Y, "y0=%d dy=%v", y0, dy)
			} else {
				assert.Equal(t, 32.0, p.Y, "y0=%d dy=%v", y0, dy)
				assert.Equal(t, entity.StateFalling, p.State, "y0=%d dy=%v", y0, dy)
			}
		}
	}
}

func TestPlayerController_DescentNearFloor(t *testing.T) {
	// floor row 3 starts at y=96; a player standing on it sits at y=64
	level := createTestLevel(
		"#####",
		"#   #",
		"#   #",
		"#####",
	)
	for y0 := 32; y0 <= 64; y0++ {
		for _, vy := range []float64{1, 20, 80, 160} {
			c := createTestController(level, 32, y0, 0)
			p := c.Player()
			p.State = entity.StateFalling
			p.VY = vy

			c.descend(0.25)

			target := float64(y0) + vy*0.25
			switch {
			case math.Ceil(target) >= 65:
				assert.Equal(t, 64.0, p.Y, "y0=%d vy=%v", y0, vy)
				assert.Equal(t, entity.StateStanding, p.State, "y0=%d vy=%v", y0, vy)
			case target == 64:
				assert.Equal(t, entity.StateStanding, p.State, "y0=%d vy=%v", y0, vy)
			default:
				assert.Equal(t, target, p.Y, "y0=%d vy=%v", y0, vy)
				assert.Equal(t, entity.StateFalling, p.State, "y0=%d vy=%v", y0, vy)
				assert.LessOrEqual(t, p.VY, 160.0)
			}
		}
	}
}

func TestPlayerController_TerminalVelocity(t *testing.T) {
	level := createTestLevel(
		"###",
		"# #",
		"# #",
		"# #",
		"# #",
		"# #",
		"# #",
		"# #",
		"# #",
		"# #",
		"# #",
		"###",
	)
	c := createTestController(level, 32, 32, 0)
	p := c.Player()
	p.State = entity.StateFalling
	p.VY = 80

	for i := 0; i < 15; i++ {
		c.Tick(0.1)
	}

	assert.Equal(t, 160.0, p.VY)
	assert.Equal(t, entity.StateFalling, p.State)
}

func TestPlayerController_Fire(t *testing.T) {
	t.Run("fires right", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 96, 5)
		var fired []*entity.Bullet
		c.OnBulletFired = func(b *entity.Bullet) { fired = append(fired, b) }

		c.ProcessAction(entity.ActionFire)

		p := c.Player()
		assert.Equal(t, entity.StateFiring, p.State)
		assert.Equal(t, 4, p.Ammo)
		assert.Equal(t, 1, p.BulletsFlying)
		require.Len(t, fired, 1)
		assert.Equal(t, 32.0+20+16, fired[0].X)
		assert.Equal(t, 96.0, fired[0].Y)
		assert.Equal(t, 96.0, fired[0].VX)
	})

	t.Run("fires left", func(t *testing.T) {
		c := createTestController(boxLevel(), 64, 96, 5)
		c.Player().Facing = entity.FacingLeft

		var fired *entity.Bullet
		c.OnBulletFired = func(b *entity.Bullet) { fired = b }
		c.ProcessAction(entity.ActionFire)

		require.NotNil(t, fired)
		assert.Equal(t, 64.0-7-16, fired.X)
		assert.Equal(t, -96.0, fired.VX)
	})

	t.Run("one bullet in the air", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 96, 5)
		shots := 0
		c.OnBulletFired = func(*entity.Bullet) { shots++ }

		c.ProcessAction(entity.ActionFire)
		c.ProcessAction(entity.ActionFire) // ignored while firing
		c.Tick(0.1)
		assert.Equal(t, entity.StateStanding, c.Player().State)

		c.ProcessAction(entity.ActionFire)
		assert.False(t, c.Player().CanFireBullet())
		assert.Equal(t, 1, shots)
		assert.Equal(t, 4, c.Player().Ammo)
	})

	t.Run("no ammo", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 96, 0)

		c.ProcessAction(entity.ActionFire)

		assert.Equal(t, entity.StateStanding, c.Player().State)
		assert.Panics(t, func() { c.FireBullet() })
	})

	t.Run("not while rising", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 96, 5)
		c.ProcessAction(entity.ActionJump)

		c.ProcessAction(entity.ActionFire)

		assert.Equal(t, entity.StateJumping, c.Player().State)
		assert.Equal(t, 5, c.Player().Ammo)
	})

	t.Run("while falling", func(t *testing.T) {
		c := createTestController(boxLevel(), 32, 32, 5)
		c.Player().State = entity.StateFalling

		c.ProcessAction(entity.ActionFire)

		assert.Equal(t, entity.StateFiring, c.Player().State)
		assert.Equal(t, 4, c.Player().Ammo)
	})
}

func TestPlayerController_AirControl(t *testing.T) {
	c := createTestController(boxLevel(), 32, 32, 0)
	p := c.Player()
	p.State = entity.StateFalling

	c.ProcessAction(entity.ActionMoveLeft)

	assert.Equal(t, entity.StateFalling, p.State)
	assert.Equal(t, entity.FacingLeft, p.Facing)
	assert.Equal(t, 64.0, p.VX)
}

func TestPlayerController_FiringOnlyTurns(t *testing.T) {
	c := createTestController(boxLevel(), 32, 96, 5)
	c.ProcessAction(entity.ActionFire)

	c.ProcessAction(entity.ActionMoveLeft)
	c.ProcessAction(entity.ActionJump)

	p := c.Player()
	assert.Equal(t, entity.StateFiring, p.State)
	assert.Equal(t, entity.FacingLeft, p.Facing)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
}

func TestPlayerController_InvalidInput(t *testing.T) {
	c := createTestController(boxLevel(), 32, 96, 0)

	assert.Panics(t, func() { c.ProcessAction(entity.Action(99)) })

	c.Player().State = entity.PlayerState(99)
	assert.Panics(t, func() { c.ProcessAction(entity.ActionJump) })
	assert.Panics(t, func() { c.Tick(0.1) })
}

func TestPlayerController_StandingFreezesAnimation(t *testing.T) {
	c := createTestController(boxLevel(), 32, 96, 0)
	p := c.Player()
	p.Frame = 2

	for i := 0; i < 5; i++ {
		c.Tick(0.1)
	}

	assert.Equal(t, 0, p.Frame)
	assert.Equal(t, 366, p.TileID())
}
