package gamemath

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = (%v,%v), want (0.6,0.8)", x, y)
	}
	x, y = Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Normalize(0,0) = (%v,%v), want (0,0)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v,%v,%v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 5, 8, 0, 4) {
		t.Error("circles 8 apart with radii 5+4 should overlap")
	}
	if CirclesOverlap(0, 0, 5, 10, 0, 4) {
		t.Error("circles 10 apart with radii 5+4 should not overlap")
	}
}

func TestSpreadAngles(t *testing.T) {
	got := SpreadAngles(1, 0.1, 5)
	want := []float64{0.9, 0.95, 1, 1.05, 1.1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("angle %d = %v, want %v", i, got[i], want[i])
		}
	}
	if single := SpreadAngles(2, 0.5, 1); len(single) != 1 || single[0] != 2 {
		t.Errorf("SpreadAngles(count=1) = %v, want [2]", single)
	}
}

func TestQuantizeStick(t *testing.T) {
	tests := []struct {
		x, y   float64
		angle  float64
		moving bool
	}{
		{0, 0, 0, false},
		{1, 0, StickEast, true},
		{0.3, 0.2, StickSouthEast, true},
		{0, 5, StickSouth, true},
		{-1, 1, StickSouthWest, true},
		{-2, 0, StickWest, true},
		{-1, -1, StickNorthWest, true},
		{0, -3, StickNorth, true},
		{4, -0.1, StickNorthEast, true},
	}
	for _, tt := range tests {
		angle, moving := QuantizeStick(tt.x, tt.y)
		if angle != tt.angle || moving != tt.moving {
			t.Errorf("QuantizeStick(%v,%v) = (%v,%v), want (%v,%v)", tt.x, tt.y, angle, moving, tt.angle, tt.moving)
		}
	}
}
