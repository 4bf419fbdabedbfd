package components

import "github.com/yohamta/donburi"

type CampfireData struct {
	X, Y   float64
	Radius float64
	// Glow scale driven by the campfire's Tween.
	Glow float64
}

var Campfire = donburi.NewComponentType[CampfireData]()
