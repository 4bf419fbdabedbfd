package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionButtonA
	ActionButtonB
	ActionButtonX
	ActionButtonY
	ActionButtonL2
	ActionButtonR2
	ActionCount // Must be last - used for array sizing
)

// ButtonActions lists the face and shoulder buttons in display order.
var ButtonActions = []ActionID{
	ActionButtonA, ActionButtonB, ActionButtonX, ActionButtonY, ActionButtonL2, ActionButtonR2,
}

// ControlSchemeID selects one of the keyboard layouts players share a keyboard with.
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
	ControlSchemeNumpad
	ControlSchemeIJKL
)

// ControlSchemeBindings maps each scheme to the keys of every action.
var ControlSchemeBindings = [][ActionCount][]ebiten.Key{
	ControlSchemeWASD: {
		ActionMoveLeft:  {ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyD},
		ActionMoveUp:    {ebiten.KeyW},
		ActionMoveDown:  {ebiten.KeyS},
		ActionButtonA:   {ebiten.KeyQ, ebiten.KeySpace},
		ActionButtonB:   {ebiten.KeyE},
		ActionButtonX:   {ebiten.KeyR},
		ActionButtonY:   {ebiten.KeyF},
		ActionButtonL2:  {ebiten.KeyZ},
		ActionButtonR2:  {ebiten.KeyX},
	},
	ControlSchemeArrows: {
		ActionMoveLeft:  {ebiten.KeyArrowLeft},
		ActionMoveRight: {ebiten.KeyArrowRight},
		ActionMoveUp:    {ebiten.KeyArrowUp},
		ActionMoveDown:  {ebiten.KeyArrowDown},
		ActionButtonA:   {ebiten.KeyU, ebiten.KeyShiftRight},
		ActionButtonB:   {ebiten.KeyO},
		ActionButtonX:   {ebiten.KeyY},
		ActionButtonY:   {ebiten.KeyH},
		ActionButtonL2:  {ebiten.KeyN},
		ActionButtonR2:  {ebiten.KeyM},
	},
	ControlSchemeNumpad: {
		ActionMoveLeft:  {ebiten.KeyNumpad4},
		ActionMoveRight: {ebiten.KeyNumpad6},
		ActionMoveUp:    {ebiten.KeyNumpad8},
		ActionMoveDown:  {ebiten.KeyNumpad2},
		ActionButtonA:   {ebiten.KeyNumpad7},
		ActionButtonB:   {ebiten.KeyNumpad9},
		ActionButtonX:   {ebiten.KeyNumpad1},
		ActionButtonY:   {ebiten.KeyNumpad3},
		ActionButtonL2:  {ebiten.KeyNumpad0},
		ActionButtonR2:  {ebiten.KeyNumpadDecimal},
	},
	ControlSchemeIJKL: {
		ActionMoveLeft:  {ebiten.KeyJ},
		ActionMoveRight: {ebiten.KeyL},
		ActionMoveUp:    {ebiten.KeyI},
		ActionMoveDown:  {ebiten.KeyK},
		ActionButtonA:   {ebiten.KeyDigit1},
		ActionButtonB:   {ebiten.KeyDigit2},
		ActionButtonX:   {ebiten.KeyDigit3},
		ActionButtonY:   {ebiten.KeyDigit4},
		ActionButtonL2:  {ebiten.KeyDigit5},
		ActionButtonR2:  {ebiten.KeyDigit6},
	},
}

// InputConfig holds the gamepad mappings shared by every player
type InputConfig struct {
	GamepadButtons map[ActionID][]ebiten.StandardGamepadButton
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		GamepadButtons: map[ActionID][]ebiten.StandardGamepadButton{
			ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
			ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
			ActionMoveUp:    {ebiten.StandardGamepadButtonLeftTop},
			ActionMoveDown:  {ebiten.StandardGamepadButtonLeftBottom},
			ActionButtonA:   {ebiten.StandardGamepadButtonRightBottom},
			ActionButtonB:   {ebiten.StandardGamepadButtonRightRight},
			ActionButtonX:   {ebiten.StandardGamepadButtonRightLeft},
			ActionButtonY:   {ebiten.StandardGamepadButtonRightTop},
			ActionButtonL2:  {ebiten.StandardGamepadButtonFrontBottomLeft},
			ActionButtonR2:  {ebiten.StandardGamepadButtonFrontBottomRight},
		},
	}
}
