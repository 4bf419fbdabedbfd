package systems

import (
	"testing"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
)

func TestGetPlayerAction(t *testing.T) {
	input := &components.PlayerInputData{}
	input.CurrentInput[cfg.ActionButtonA] = true
	input.PreviousInput[cfg.ActionButtonB] = true
	input.CurrentInput[cfg.ActionButtonX] = true
	input.PreviousInput[cfg.ActionButtonX] = true

	tests := []struct {
		id   cfg.ActionID
		want components.ActionState
	}{
		{cfg.ActionButtonA, components.ActionState{Pressed: true, JustPressed: true}},
		{cfg.ActionButtonB, components.ActionState{JustReleased: true}},
		{cfg.ActionButtonX, components.ActionState{Pressed: true}},
		{cfg.ActionButtonY, components.ActionState{}},
	}
	for _, tt := range tests {
		if got := GetPlayerAction(input, tt.id); got != tt.want {
			t.Errorf("action %d = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func TestDigitalAxes(t *testing.T) {
	input := &components.PlayerInputData{}
	input.CurrentInput[cfg.ActionMoveLeft] = true
	input.CurrentInput[cfg.ActionMoveDown] = true
	if x, y := digitalAxes(input); x != -1 || y != 1 {
		t.Errorf("axes = (%v, %v), want (-1, 1)", x, y)
	}

	input.CurrentInput[cfg.ActionMoveRight] = true
	if x, _ := digitalAxes(input); x != 0 {
		t.Errorf("opposite keys gave x = %v, want 0", x)
	}
}

func TestApplyDeadzone(t *testing.T) {
	x, y := applyDeadzone(0.1, -0.6, 0.2)
	if x != 0 || y != -0.6 {
		t.Errorf("applyDeadzone = (%v, %v), want (0, -0.6)", x, y)
	}
}

func TestMarkStickActions(t *testing.T) {
	input := &components.PlayerInputData{MoveX: 0.5, MoveY: -0.7}
	markStickActions(input)
	if !input.CurrentInput[cfg.ActionMoveRight] || !input.CurrentInput[cfg.ActionMoveUp] {
		t.Error("stick direction not mirrored onto the movement actions")
	}
	if input.CurrentInput[cfg.ActionMoveLeft] || input.CurrentInput[cfg.ActionMoveDown] {
		t.Error("opposite movement actions set")
	}
}

func TestPressedButtonsText(t *testing.T) {
	input := &components.PlayerInputData{}
	if got := PressedButtonsText(input); got != "" {
		t.Errorf("nothing held gave %q", got)
	}
	input.CurrentInput[cfg.ActionButtonR2] = true
	input.CurrentInput[cfg.ActionButtonA] = true
	input.CurrentInput[cfg.ActionButtonX] = true
	if got := PressedButtonsText(input); got != "AXR2" {
		t.Errorf("PressedButtonsText = %q, want %q", got, "AXR2")
	}
	input.CurrentInput[cfg.ActionButtonX] = false
	if got := PressedButtonsText(input); got != "AR2" {
		t.Errorf("PressedButtonsText = %q, want %q", got, "AR2")
	}
}
