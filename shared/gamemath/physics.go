package gamemath

import "math"

// Length returns the magnitude of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize returns (x, y) scaled to unit length, or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns the unit vector pointing along angle (radians).
func Direction(angle float64) (float64, float64) {
	return math.Cos(angle), math.Sin(angle)
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	dx, dy := bx-ax, by-ay
	r := ar + br
	return dx*dx+dy*dy < r*r
}

// SpreadAngles returns count angles evenly covering [center-spread, center+spread].
// A single shot goes straight along center.
func SpreadAngles(center, spread float64, count int) []float64 {
	if count <= 1 {
		return []float64{center}
	}
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		out[i] = center - spread + spread*2*float64(i)/float64(count-1)
	}
	return out
}
