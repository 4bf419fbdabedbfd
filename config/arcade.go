package config

import "image/color"

// ArcadeButton names, in the order they are listed on screen.
var ArcadeButtons = []string{"A", "B", "X", "Y", "L2", "R2"}

// ArcadePanel places one player's controls on the cabinet artwork.
type ArcadePanel struct {
	Corner   [2]float64    // the player's corner of the cabinet
	Start    [2]float64    // circle start position
	Joystick [2]float64    // joystick indicator
	Buttons  [5][2]float64 // A, B, X, Y, L2
	Text     [2]float64    // pressed-buttons label
}

// ArcadeConfig contains configuration for the button demo
type ArcadeConfig struct {
	Speed       float64
	MinX, MaxX  float64
	MinY, MaxY  float64
	RingRadius  float64
	ButtonSize  float64
	StickRadius float64
	MenuButton  [2]float64 // R2 of the second player
	Panels      [4]ArcadePanel
	Colors      [4]color.RGBA
	Background  color.RGBA
	BoxColor    color.RGBA
	TextColor   color.RGBA
}

// Arcade is the global arcade demo configuration
var Arcade ArcadeConfig

func init() {
	Arcade = ArcadeConfig{
		Speed:       180,
		MinX:        443,
		MaxX:        925,
		MinY:        287,
		MaxY:        488,
		RingRadius:  24,
		ButtonSize:  10,
		StickRadius: 18,
		MenuButton:  [2]float64{693, 147},
		Colors: [4]color.RGBA{
			{R: 255, G: 50, B: 50, A: 255},
			{R: 0, G: 250, B: 0, A: 255},
			{R: 20, G: 20, B: 255, A: 255},
			{R: 255, G: 255, B: 0, A: 255},
		},
		Background: color.RGBA{R: 200, G: 200, B: 210, A: 255},
		BoxColor:   color.RGBA{R: 30, G: 30, B: 40, A: 255},
		TextColor:  Black,
		Panels: [4]ArcadePanel{
			{
				Corner:   [2]float64{50, 540},
				Start:    [2]float64{500, 320},
				Joystick: [2]float64{275, 460},
				Buttons:  [5][2]float64{{284, 508}, {303, 527}, {308, 552}, {306, 576}, {306, 667}},
				Text:     [2]float64{100, 510},
			},
			{
				Corner:   [2]float64{1300, 240},
				Start:    [2]float64{800, 320},
				Joystick: [2]float64{1064, 271},
				Buttons:  [5][2]float64{{1058, 228}, {1038, 210}, {1033, 185}, {1035, 159}, {1028, 74}},
				Text:     [2]float64{1200, 221},
			},
			{
				Corner:   [2]float64{1300, 720},
				Start:    [2]float64{500, 450},
				Joystick: [2]float64{1033, 577},
				Buttons:  [5][2]float64{{1049, 532}, {1042, 509}, {1050, 484}, {1065, 461}, {1029, 667}},
				Text:     [2]float64{1200, 527},
			},
			{
				Corner:   [2]float64{50, 50},
				Start:    [2]float64{800, 450},
				Joystick: [2]float64{303, 155},
				Buttons:  [5][2]float64{{289, 205}, {298, 229}, {289, 253}, {274, 275}, {306, 75}},
				Text:     [2]float64{100, 205},
			},
		},
	}
}
