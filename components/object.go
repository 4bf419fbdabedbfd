package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the actor's broad-phase body. Its X/Y is the top-left of the
// bounding square around the actor's circle.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the body.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// SetCenter moves the body so its middle sits at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
