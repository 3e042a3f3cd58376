package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sam/internal/domain/entity"
)

// InputState holds which actions are currently held down
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
	Jump  bool
}

// Actions resolves the held state into actions, always in the order Left, Right, Fire, Jump
func (in InputState) Actions() []entity.Action {
	actions := make([]entity.Action, 0, 4)
	if in.Left {
		actions = append(actions, entity.ActionMoveLeft)
	}
	if in.Right {
		actions = append(actions, entity.ActionMoveRight)
	}
	if in.Fire {
		actions = append(actions, entity.ActionFire)
	}
	if in.Jump {
		actions = append(actions, entity.ActionJump)
	}
	return actions
}

// DefaultKeyMap binds the keyboard to actions
var DefaultKeyMap = map[ebiten.Key]entity.Action{
	ebiten.KeyArrowLeft:  entity.ActionMoveLeft,
	ebiten.KeyNumpad4:    entity.ActionMoveLeft,
	ebiten.KeyArrowRight: entity.ActionMoveRight,
	ebiten.KeyNumpad6:    entity.ActionMoveRight,
	ebiten.KeyX:          entity.ActionFire,
	ebiten.KeyZ:          entity.ActionJump,
}

// InputSystem turns key-down and key-up edges into held action state
type InputSystem struct {
	keyMap map[ebiten.Key]entity.Action
	held   map[ebiten.Key]bool
	keys   []ebiten.Key
}

// NewInputSystem creates an input system; a nil keyMap uses DefaultKeyMap
func NewInputSystem(keyMap map[ebiten.Key]entity.Action) *InputSystem {
	if keyMap == nil {
		keyMap = DefaultKeyMap
	}
	return &InputSystem{
		keyMap: keyMap,
		held:   make(map[ebiten.Key]bool),
		keys:   make([]ebiten.Key, 0, 8),
	}
}

// Poll reads this frame's key edges from ebiten and returns the held state
func (s *InputSystem) Poll() InputState {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.KeyDown(k)
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.KeyUp(k)
	}
	return s.State()
}

// KeyDown records a key press. Unmapped keys are ignored.
func (s *InputSystem) KeyDown(k ebiten.Key) {
	if _, ok := s.keyMap[k]; ok {
		s.held[k] = true
	}
}

// KeyUp records a key release
func (s *InputSystem) KeyUp(k ebiten.Key) {
	delete(s.held, k)
}

// Reset releases every key
func (s *InputSystem) Reset() {
	clear(s.held)
}

// State returns which actions have at least one bound key held
func (s *InputSystem) State() InputState {
	var in InputState
	for k := range s.held {
		switch s.keyMap[k] {
		case entity.ActionMoveLeft:
			in.Left = true
		case entity.ActionMoveRight:
			in.Right = true
		case entity.ActionFire:
			in.Fire = true
		case entity.ActionJump:
			in.Jump = true
		}
	}
	return in
}
