package system

import "github.com/younwookim/sam/internal/domain/entity"

// Event is a notification produced by one simulation step
type Event interface {
	isEvent()
}

// BulletFired is emitted when the player launches a bullet
type BulletFired struct {
	Bullet *entity.Bullet
}

func (BulletFired) isEvent() {}

// ObjectConsumed is emitted when an interactive object leaves the simulation
type ObjectConsumed struct {
	Object entity.Interactive
	By     entity.Object // what it collided with; nil when it left the level
}

func (ObjectConsumed) isEvent() {}

// LevelReset is emitted when the level is rebuilt from its initial state
type LevelReset struct {
	Level string
}

func (LevelReset) isEvent() {}

// objectKind names an interactive for logs
func objectKind(o entity.Object) string {
	switch o.(type) {
	case *entity.Player:
		return "player"
	case *entity.Glasses:
		return "glasses"
	case *entity.Ammo:
		return "ammo"
	case *entity.SatelliteDish:
		return "satellite"
	case *entity.Pushable:
		return "pushable"
	case *entity.Bullet:
		return "bullet"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}
