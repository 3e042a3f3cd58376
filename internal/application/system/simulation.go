package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/sam/internal/domain/entity"
	"github.com/younwookim/sam/internal/infrastructure/config"
)

// ErrNoSpawn is returned for a level without a player spawn tile
var ErrNoSpawn = errors.New("no player spawn")

// Status is the readout shown alongside the level
type Status struct {
	Score int
	Ammo  int
	Lives int
	State entity.PlayerState
}

// Simulation owns everything one level needs to run: the grid, the player,
// the interactive objects and the controller. One Tick is one frame.
type Simulation struct {
	config     *config.GameConfig
	level      *entity.Level
	player     *entity.Player
	objects    *Interactives
	controller *PlayerController
	resolver   *CollisionResolver
	pixelTest  bool
	events     []Event
	logger     *log.Logger
}

// NewSimulation builds the player and objects of level and places the player on the spawn tile
func NewSimulation(cfg *config.GameConfig, level *entity.Level, logger *log.Logger) (*Simulation, error) {
	if _, _, ok := level.Find(entity.CodePlayerSpawn); !ok {
		return nil, fmt.Errorf("level %s: %w", level.Name, ErrNoSpawn)
	}

	pc := cfg.Physics.Player
	player := entity.NewPlayer(0, 0, pc.StartingAmmo, pc.StartingLives, pc.MaxBulletsFlying)

	s := &Simulation{
		config:   cfg,
		level:    level,
		player:   player,
		objects:  NewInteractives(),
		resolver: NewCollisionResolver(level.TileHeight, nil),
		events:   make([]Event, 0, 8),
		logger:   logger,
	}
	s.controller = NewPlayerController(cfg, level, player)
	s.controller.OnBulletFired = s.bulletFired

	s.load()
	return s, nil
}

// SetAlphaMask switches object collisions to per-pixel tests against mask
func (s *Simulation) SetAlphaMask(mask AlphaMask) {
	s.resolver = NewCollisionResolver(s.level.TileHeight, mask)
	s.pixelTest = mask != nil
}

// Tick runs one frame: actions, player, objects, collisions, then the hazard check.
// A zero delta is a no-op.
func (s *Simulation) Tick(dt float64, actions []entity.Action) {
	checkDelta(dt)
	s.events = s.events[:0]
	if dt == 0 {
		return
	}

	for _, a := range actions {
		s.controller.ProcessAction(a)
	}
	s.controller.Tick(dt)

	for i := 0; i < s.objects.Len(); i++ {
		s.objects.At(i).Tick(dt)
	}

	s.ResolveCollisions()

	p := s.player
	if InDeathSquare(s.level, p.X, p.Y, p.DrawWidth(), s.level.TileHeight) {
		s.ResetLevel()
	}
}

// ResolveCollisions tests the player and every bullet against the interactive
// objects in insertion order, then removes whatever was consumed
func (s *Simulation) ResolveCollisions() {
	s.expireBullets()

	for i := 0; i < s.objects.Len(); i++ {
		if s.objects.Consumed(i) {
			continue
		}
		obj := s.objects.At(i)
		if !s.collides(s.player, obj) {
			continue
		}
		if obj.CollidedWith(s.player, s.level) {
			s.consume(i, s.player)
		}
	}

	s.resolveBulletHits()
	s.compact()
}

// ResetLevel rebuilds the level from its initial state and respawns the player.
// Score and lives carry over.
func (s *Simulation) ResetLevel() {
	s.level.Restore()
	s.load()
	s.events = append(s.events, LevelReset{Level: s.level.Name})
	s.logger.Info("level reset", "level", s.level.Name, "objects", s.objects.Len())
}

// Level returns the level being simulated
func (s *Simulation) Level() *entity.Level {
	return s.level
}

// Player returns the player
func (s *Simulation) Player() *entity.Player {
	return s.player
}

// Controller returns the player controller
func (s *Simulation) Controller() *PlayerController {
	return s.controller
}

// Objects returns the interactive objects in insertion order
func (s *Simulation) Objects() []entity.Interactive {
	return s.objects.Items()
}

// Events returns the notifications of the last Tick
func (s *Simulation) Events() []Event {
	return s.events
}

// Status returns the score, ammo and lives readout
func (s *Simulation) Status() Status {
	return Status{
		Score: s.player.Score,
		Ammo:  s.player.Ammo,
		Lives: s.player.Lives,
		State: s.player.State,
	}
}

// load clears the objects, creates them again from the level's map codes and
// places the player on the spawn tile
func (s *Simulation) load() {
	s.objects.Clear()

	ents := s.config.Entities
	level := s.level
	tw, th := level.TileWidth, level.TileHeight

	for row := 0; row < level.Height; row++ {
		for col := 0; col < level.Width; col++ {
			x, y := col*tw, row*th

			var obj entity.Interactive
			switch level.Code(col, row) {
			case entity.CodeGlasses:
				obj = entity.NewGlasses(x, y, s.tileAt(col, row, ents.Glasses.TileID), tw,
					ents.Glasses.PlatformTileID, ents.Glasses.Points)
			case entity.CodeAmmo:
				obj = entity.NewAmmo(x, y, s.tileAt(col, row, ents.Ammo.TileID), tw,
					ents.Ammo.Shots, ents.Ammo.Points)
			case entity.CodeSatellite:
				obj = entity.NewSatelliteDish(x, y, tw, ents.Satellite.FrameSeconds)
			case entity.CodePushable:
				obj = entity.NewPushable(x, y, s.tileAt(col, row, ents.Pushable.TileID), tw, level)
			}
			if obj == nil {
				continue
			}
			level.SetMidTile(col, row, entity.NoTile)
			s.objects.Add(obj)
		}
	}

	col, row, _ := level.Find(entity.CodePlayerSpawn)
	s.player.Reset(col*tw, row*th)
	s.player.Ammo = s.config.Physics.Player.StartingAmmo
}

// tileAt returns the mid-layer graphic of a tile, or def when it has none
func (s *Simulation) tileAt(col, row, def int) int {
	if t := s.level.MidTile(col, row); t != entity.NoTile {
		return t
	}
	return def
}

func (s *Simulation) bulletFired(b *entity.Bullet) {
	s.objects.Add(b)
	s.events = append(s.events, BulletFired{Bullet: b})
	s.logger.Debug("bullet fired", "x", b.PixelX(), "y", b.PixelY(), "ammo", s.player.Ammo)
}

// expireBullets consumes bullets that left the level or flew into a wall
func (s *Simulation) expireBullets() {
	level := s.level
	for i := 0; i < s.objects.Len(); i++ {
		b, ok := s.objects.At(i).(*entity.Bullet)
		if !ok || s.objects.Consumed(i) {
			continue
		}

		if b.PixelX()+b.Width <= 0 || b.PixelX() >= level.PixelWidth() {
			s.consume(i, nil)
			continue
		}

		if s.hitsWall(b) {
			s.consume(i, nil)
		}
	}
}

// hitsWall reports whether the bullet's leading edge crossed a column solid
// on the side it flies into since the previous tick
func (s *Simulation) hitsWall(b *entity.Bullet) bool {
	level := s.level
	side := entity.SolidLeft
	if b.Facing == entity.FacingLeft {
		side = entity.SolidRight
	}

	row := level.RowAt(b.PixelY() + level.TileHeight/2)
	from := level.ColumnAt(b.PrevLeadingEdge())
	to := level.ColumnAt(b.LeadingEdge())
	if from > to {
		from, to = to, from
	}
	for col := from; col <= to; col++ {
		if level.Bounds(col, row).Has(side) {
			return true
		}
	}
	return false
}

// resolveBulletHits lets every bullet strike the first other object it overlaps
func (s *Simulation) resolveBulletHits() {
	for i := 0; i < s.objects.Len(); i++ {
		b, ok := s.objects.At(i).(*entity.Bullet)
		if !ok || s.objects.Consumed(i) {
			continue
		}

		for j := 0; j < s.objects.Len(); j++ {
			if j == i || s.objects.Consumed(j) {
				continue
			}
			target := s.objects.At(j)
			if _, isBullet := target.(*entity.Bullet); isBullet {
				continue
			}
			if !s.collides(b, target) {
				continue
			}
			if target.CollidedWith(b, s.level) {
				s.consume(j, b)
			}
			if b.CollidedWith(target, s.level) {
				s.consume(i, target)
			}
			break
		}
	}
}

func (s *Simulation) collides(a, b entity.Object) bool {
	if s.pixelTest {
		return s.resolver.PixelOverlap(a, b)
	}
	return s.resolver.Overlaps(a, b)
}

func (s *Simulation) consume(i int, by entity.Object) {
	obj := s.objects.At(i)
	if !s.objects.MarkConsumed(i) {
		return
	}
	s.events = append(s.events, ObjectConsumed{Object: obj, By: by})
	s.logger.Debug("object consumed", "object", objectKind(obj), "by", objectKind(by))
}

// compact removes consumed objects and applies their side effects
func (s *Simulation) compact() {
	for _, obj := range s.objects.Compact() {
		if _, ok := obj.(*entity.Bullet); ok {
			s.player.BulletDied()
		}
	}
}
