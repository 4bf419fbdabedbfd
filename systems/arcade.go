package systems

import (
	"math"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/fonts"
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCircles moves every player's ring and records their held buttons.
func UpdateCircles(ecs *ecs.ECS) {
	dt := deltaTime()
	components.Circle.Each(ecs.World, func(entry *donburi.Entry) {
		circle := components.Circle.Get(entry)
		input := components.PlayerInput.Get(entry)
		StepCircle(circle, input.MoveX, input.MoveY, dt)
		circle.Pressed = PressedButtonsText(input)
	})
}

// StepCircle moves a ring by its normalised input. An axis that would leave
// the play box is dropped for this step.
func StepCircle(c *components.CircleData, mx, my, dt float64) {
	mx, my = gamemath.Normalize(mx, my)
	dx := mx * cfg.Arcade.Speed * dt
	dy := my * cfg.Arcade.Speed * dt

	// A blocked axis also reads as idle for the joystick knob.
	if nx := c.X + dx; nx < cfg.Arcade.MinX || nx > cfg.Arcade.MaxX {
		dx, mx = 0, 0
	}
	if ny := c.Y + dy; ny < cfg.Arcade.MinY || ny > cfg.Arcade.MaxY {
		dy, my = 0, 0
	}
	c.X += dx
	c.Y += dy
	c.MoveX, c.MoveY = mx, my
}

// DrawArcade renders the cabinet: play box, rings, joysticks, buttons and
// each player's pressed-buttons label.
func DrawArcade(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arcade.Background)
	a := cfg.Arcade
	vector.FillRect(screen, float32(a.MinX), float32(a.MinY),
		float32(a.MaxX-a.MinX), float32(a.MaxY-a.MinY), a.BoxColor, false)

	face := fonts.HUD.Get()
	components.Circle.Each(ecs.World, func(entry *donburi.Entry) {
		circle := components.Circle.Get(entry)
		input := components.PlayerInput.Get(entry)
		panel := a.Panels[circle.PlayerIndex%len(a.Panels)]

		vector.StrokeCircle(screen, float32(circle.X), float32(circle.Y), float32(a.RingRadius), 4, circle.Color, true)

		drawJoystick(screen, panel.Joystick, circle)
		for i, pos := range panel.Buttons {
			drawArcadeButton(screen, pos, circle, input.CurrentInput[cfg.ButtonActions[i]])
		}
		if circle.PlayerIndex == 1 {
			drawArcadeButton(screen, a.MenuButton, circle, input.CurrentInput[cfg.ActionButtonR2])
		}

		vector.FillCircle(screen, float32(panel.Corner[0]), float32(panel.Corner[1]), 12, circle.Color, true)
		text.Draw(screen, circle.Pressed, face, int(panel.Text[0]), int(panel.Text[1]), a.TextColor)
	})
}

func drawJoystick(screen *ebiten.Image, pos [2]float64, c *components.CircleData) {
	r := cfg.Arcade.StickRadius
	vector.StrokeCircle(screen, float32(pos[0]), float32(pos[1]), float32(r), 2, cfg.Black, true)

	kx, ky := pos[0], pos[1]
	if angle, moving := gamemath.QuantizeStick(c.MoveX, c.MoveY); moving {
		kx += math.Cos(angle) * r * 0.6
		ky += math.Sin(angle) * r * 0.6
	}
	vector.FillCircle(screen, float32(kx), float32(ky), float32(r*0.4), c.Color, true)
}

func drawArcadeButton(screen *ebiten.Image, pos [2]float64, c *components.CircleData, pressed bool) {
	s := cfg.Arcade.ButtonSize
	x, y := float32(pos[0]-s/2), float32(pos[1]-s/2)
	if pressed {
		vector.FillRect(screen, x, y, float32(s), float32(s), c.Color, false)
		return
	}
	vector.StrokeRect(screen, x, y, float32(s), float32(s), 1, cfg.Black, false)
}
