package gamemath

// Stick indicator angles in radians, clockwise from east on a y-down screen.
const (
	StickEast      = 0.0
	StickSouthEast = 0.79
	StickSouth     = 1.57
	StickSouthWest = 2.356
	StickWest      = 3.14
	StickNorthWest = 3.93
	StickNorth     = 4.71
	StickNorthEast = 5.5
)

// QuantizeStick snaps a movement vector to one of eight indicator angles by
// the signs of its components. moving is false for a zero vector.
func QuantizeStick(x, y float64) (angle float64, moving bool) {
	switch {
	case x == 0 && y == 0:
		return 0, false
	case x > 0 && y == 0:
		return StickEast, true
	case x > 0 && y > 0:
		return StickSouthEast, true
	case x == 0 && y > 0:
		return StickSouth, true
	case x < 0 && y > 0:
		return StickSouthWest, true
	case x < 0 && y == 0:
		return StickWest, true
	case x < 0 && y < 0:
		return StickNorthWest, true
	case x == 0 && y < 0:
		return StickNorth, true
	default:
		return StickNorthEast, true
	}
}
