package systems

import (
	"strings"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateMultiPlayerInput polls input for all entities with PlayerInputData.
// Must run BEFORE the systems that read it.
func UpdateMultiPlayerInput(ecs *ecs.ECS) {
	bindNewGamepads(ecs)

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		updatePlayerInputData(input)
	})
}

// bindNewGamepads hands connected gamepads that no player owns yet to the
// lowest player without one. Pads survive a scene restart this way.
func bindNewGamepads(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if gamepadBound(ecs, id) {
			continue
		}
		var target *components.PlayerInputData
		components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
			input := components.PlayerInput.Get(entry)
			if input.BoundGamepadID != nil {
				return
			}
			if target == nil || input.PlayerIndex < target.PlayerIndex {
				target = input
			}
		})
		if target == nil {
			return
		}
		gpID := id
		target.BoundGamepadID = &gpID
	}
}

func gamepadBound(ecs *ecs.ECS, id ebiten.GamepadID) bool {
	bound := false
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		if input.BoundGamepadID != nil && *input.BoundGamepadID == id {
			bound = true
		}
	})
	return bound
}

// updatePlayerInputData polls input for a single player based on their bound device.
func updatePlayerInputData(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}
	input.MoveX, input.MoveY, input.AimX, input.AimY = 0, 0, 0, 0

	if input.BoundGamepadID != nil && pollGamepadForPlayer(input, *input.BoundGamepadID) {
		return
	}

	// Fall back to the keyboard when no gamepad is bound or it went away.
	if input.ControlScheme >= 0 && int(input.ControlScheme) < len(cfg.ControlSchemeBindings) {
		pollControlSchemeForPlayer(input, input.ControlScheme)
	}
}

// pollGamepadForPlayer reads input from a specific gamepad into PlayerInputData.
// It returns false when the gamepad cannot be read.
func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return false
	}
	input.InputMethod = components.InputGamepad

	for actionID, buttons := range cfg.Input.GamepadButtons {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	input.MoveX, input.MoveY = applyDeadzone(lx, ly, deadzone)
	input.AimX, input.AimY = applyDeadzone(
		ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
		ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		deadzone,
	)

	// The d-pad overrides the stick.
	dx, dy := digitalAxes(input)
	if dx != 0 || dy != 0 {
		input.MoveX, input.MoveY = dx, dy
	}
	markStickActions(input)
	return true
}

// pollControlSchemeForPlayer reads input from a control scheme into PlayerInputData.
func pollControlSchemeForPlayer(input *components.PlayerInputData, scheme cfg.ControlSchemeID) {
	schemeBindings := cfg.ControlSchemeBindings[scheme]
	keyPressed := false

	for actionID, keys := range schemeBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				keyPressed = true
			}
		}
	}

	input.MoveX, input.MoveY = digitalAxes(input)
	if keyPressed {
		input.InputMethod = components.InputKeyboard
	}
}

// digitalAxes turns the four movement actions into -1/0/1 axes.
func digitalAxes(input *components.PlayerInputData) (float64, float64) {
	var x, y float64
	if input.CurrentInput[cfg.ActionMoveLeft] {
		x--
	}
	if input.CurrentInput[cfg.ActionMoveRight] {
		x++
	}
	if input.CurrentInput[cfg.ActionMoveUp] {
		y--
	}
	if input.CurrentInput[cfg.ActionMoveDown] {
		y++
	}
	return x, y
}

// markStickActions mirrors the analog stick onto the digital movement actions.
func markStickActions(input *components.PlayerInputData) {
	if input.MoveX < 0 {
		input.CurrentInput[cfg.ActionMoveLeft] = true
	}
	if input.MoveX > 0 {
		input.CurrentInput[cfg.ActionMoveRight] = true
	}
	if input.MoveY < 0 {
		input.CurrentInput[cfg.ActionMoveUp] = true
	}
	if input.MoveY > 0 {
		input.CurrentInput[cfg.ActionMoveDown] = true
	}
}

func applyDeadzone(x, y, deadzone float64) (float64, float64) {
	if x > -deadzone && x < deadzone {
		x = 0
	}
	if y > -deadzone && y < deadzone {
		y = 0
	}
	return x, y
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.CurrentInput[id]
	prev := input.PreviousInput[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PressedButtonsText concatenates the held buttons, e.g. "AXR2".
func PressedButtonsText(input *components.PlayerInputData) string {
	var sb strings.Builder
	for i, id := range cfg.ButtonActions {
		if input.CurrentInput[id] {
			sb.WriteString(cfg.ArcadeButtons[i])
		}
	}
	return sb.String()
}
