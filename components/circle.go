package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// CircleData is one player's ring in the arcade button demo.
type CircleData struct {
	PlayerIndex int
	X, Y        float64
	Color       color.RGBA
	// Last applied movement, used for the joystick indicator.
	MoveX, MoveY float64
	Pressed      string
}

var Circle = donburi.NewComponentType[CircleData]()
