package systems

import (
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/automoto/campfire/shared/tilemap"
)

// slideMove moves a circle from (x, y) towards (nx, ny). When the target
// overlaps an obstacle it keeps whichever single axis is free, or stays put.
func slideMove(m *tilemap.Map, x, y, nx, ny, radius float64) (float64, float64) {
	if m == nil || !m.CheckCollision(nx, ny, radius) {
		return nx, ny
	}
	if nx != x && !m.CheckCollision(nx, y, radius) {
		return nx, y
	}
	if ny != y && !m.CheckCollision(x, ny, radius) {
		return x, ny
	}
	return x, y
}

// clampToMap keeps a point margin pixels inside the map.
func clampToMap(m *tilemap.Map, x, y, margin float64) (float64, float64) {
	if m == nil {
		return x, y
	}
	w, h := float64(m.WidthInPixels()), float64(m.HeightInPixels())
	if w <= 2*margin || h <= 2*margin {
		return gamemath.Clamp(x, 0, w), gamemath.Clamp(y, 0, h)
	}
	return gamemath.Clamp(x, margin, w-margin), gamemath.Clamp(y, margin, h-margin)
}
