package factory

import (
	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCircle places player index's ring at its start position.
func CreateCircle(ecs *ecs.ECS, index int, input PlayerInputConfig) *donburi.Entry {
	circle := archetypes.Circle.Spawn(ecs)
	panel := cfg.Arcade.Panels[index]
	components.Circle.SetValue(circle, components.CircleData{
		PlayerIndex: index,
		X:           panel.Start[0],
		Y:           panel.Start[1],
		Color:       cfg.Arcade.Colors[index],
	})
	components.PlayerInput.SetValue(circle, components.PlayerInputData{
		PlayerIndex:    index,
		BoundGamepadID: input.GamepadID,
		ControlScheme:  input.ControlScheme,
	})
	return circle
}
