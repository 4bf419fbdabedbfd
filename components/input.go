package components

import (
	cfg "github.com/automoto/campfire/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state.
// Each player entity has their own PlayerInputData with a bound input device.
type PlayerInputData struct {
	PlayerIndex    int                   // 0-3 player index
	CurrentInput   [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput  [cfg.ActionCount]bool // Previous frame's Pressed state
	BoundGamepadID *ebiten.GamepadID     // Bound gamepad (nil = keyboard)
	ControlScheme  cfg.ControlSchemeID   // Keyboard layout when no gamepad is bound
	InputMethod    InputMethod

	// Analog state, y grows downwards. Keyboard input produces -1, 0 or 1.
	MoveX, MoveY float64
	AimX, AimY   float64
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
