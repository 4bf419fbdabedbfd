package tilemap

import (
	"math"
	"strings"
)

const (
	// sampleCount samples are spread evenly around the circle.
	sampleCount = 8
	// sampleReach is the fraction of the radius where samples are taken.
	sampleReach = 0.8
)

// ObstacleLayer returns the first layer whose name contains "obstacle",
// ignoring case, or nil.
func (m *Map) ObstacleLayer() *Layer {
	for _, l := range m.Layers {
		if strings.Contains(strings.ToLower(l.Name), "obstacle") {
			return l
		}
	}
	return nil
}

// Sample is one point tested by a collision check.
type Sample struct {
	Point
	Hit bool
}

// Samples returns the eight samples CheckCollision takes for a circle at
// (x, y): angles k*pi/4 at 0.8*radius. A sample hits when its tile is inside
// the map and non-zero on the obstacle layer.
func (m *Map) Samples(x, y, radius float64) []Sample {
	obstacles := m.ObstacleLayer()
	samples := make([]Sample, sampleCount)
	for i := range samples {
		angle := float64(i) * 2 * math.Pi / sampleCount
		p := Point{X: x + math.Cos(angle)*radius*sampleReach, Y: y + math.Sin(angle)*radius*sampleReach}
		samples[i] = Sample{Point: p, Hit: m.obstacleAt(obstacles, p)}
	}
	return samples
}

// CheckCollision reports whether a circle at (x, y) overlaps an obstacle
// tile. Maps without an obstacle layer never collide.
func (m *Map) CheckCollision(x, y, radius float64) bool {
	obstacles := m.ObstacleLayer()
	if obstacles == nil {
		return false
	}
	for i := 0; i < sampleCount; i++ {
		angle := float64(i) * 2 * math.Pi / sampleCount
		p := Point{X: x + math.Cos(angle)*radius*sampleReach, Y: y + math.Sin(angle)*radius*sampleReach}
		if m.obstacleAt(obstacles, p) {
			return true
		}
	}
	return false
}

func (m *Map) obstacleAt(obstacles *Layer, p Point) bool {
	if obstacles == nil || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return false
	}
	// Truncation, so samples just left of or above the map land in column/row 0.
	tx := int(p.X / float64(m.TileWidth))
	ty := int(p.Y / float64(m.TileHeight))
	if tx < 0 || ty < 0 || tx >= m.Width || ty >= m.Height {
		return false
	}
	return obstacles.Tile(tx, ty) != 0
}

// Blocked reports whether the tile under a single point is an obstacle.
func (m *Map) Blocked(x, y float64) bool {
	obstacles := m.ObstacleLayer()
	if obstacles == nil || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return false
	}
	if x < 0 || y < 0 {
		return false
	}
	return obstacles.Tile(int(x/float64(m.TileWidth)), int(y/float64(m.TileHeight))) != 0
}
