package systems

import (
	"testing"

	"github.com/automoto/campfire/shared/tilemap"
)

func TestCameraTarget(t *testing.T) {
	players := []tilemap.Point{{X: 1000, Y: 600}, {X: 1200, Y: 800}}

	tests := []struct {
		name           string
		levelW, levelH float64
		wantX, wantY   float64
	}{
		{"centroid", 3000, 2000, 1100, 700},
		{"level smaller than screen", 640, 480, 320, 240},
		{"clamped to the far edge", 1400, 900, 1400 - 683, 900 - 384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cameraTarget(players, tt.levelW, tt.levelH, 1366, 768)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("cameraTarget = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
