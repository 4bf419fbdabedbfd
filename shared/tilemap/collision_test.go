package tilemap

import "testing"

// newTestMap returns a 10x10 map of 32 px tiles with a single obstacle at (5, 5).
func newTestMap(obstacleName string) *Map {
	m := &Map{Width: 10, Height: 10, TileWidth: 32, TileHeight: 32}
	m.Layers = append(m.Layers, NewLayer("ground", 10, 10))
	if obstacleName != "" {
		obst := NewLayer(obstacleName, 10, 10)
		obst.SetTile(5, 5, 1)
		m.Layers = append(m.Layers, obst)
	}
	return m
}

func TestCheckCollision(t *testing.T) {
	m := newTestMap("Obstacles")

	tests := []struct {
		name    string
		x, y, r float64
		want    bool
	}{
		{"centre of obstacle", 176, 176, 1, true},
		{"far away", 40, 40, 10, false},
		// Tile (5,5) spans 160..192. A sample 0.8*20 = 16 px to the right of 150 hits 166.
		{"reaches obstacle from the left", 150, 176, 20, true},
		{"just short from the left", 150, 176, 12, false},
		{"diagonal reach", 150, 150, 20, true},
		{"outside the map", -200, -200, 10, false},
		{"zero radius on empty tile", 100, 100, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.CheckCollision(tt.x, tt.y, tt.r); got != tt.want {
				t.Errorf("CheckCollision(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.r, got, tt.want)
			}
		})
	}
}

func TestCheckCollisionTruncatesTowardZero(t *testing.T) {
	m := newTestMap("obstacles")
	m.Layers[1].SetTile(0, 0, 1)

	// Samples slightly left of the map truncate into column 0.
	if !m.CheckCollision(-5, 10, 4) {
		t.Error("expected collision for a sample truncated into tile (0,0)")
	}
}

func TestCheckCollisionWithoutObstacleLayer(t *testing.T) {
	m := newTestMap("")
	m.Layers[0].SetTile(5, 5, 1)
	if m.CheckCollision(176, 176, 10) {
		t.Error("maps without an obstacle layer must never collide")
	}
}

func TestObstacleLayerMatching(t *testing.T) {
	tests := []struct {
		name  string
		match bool
	}{
		{"Obstacles", true},
		{"OBSTACLE", true},
		{"tree-obstacles-2", true},
		{"walls", false},
	}
	for _, tt := range tests {
		m := newTestMap(tt.name)
		if got := m.ObstacleLayer() != nil; got != tt.match {
			t.Errorf("ObstacleLayer() for %q found = %v, want %v", tt.name, got, tt.match)
		}
	}
}

func TestObstacleLayerPicksFirst(t *testing.T) {
	m := newTestMap("obstacle-a")
	m.Layers = append(m.Layers, NewLayer("obstacle-b", 10, 10))
	if got := m.ObstacleLayer().Name; got != "obstacle-a" {
		t.Errorf("ObstacleLayer().Name = %q, want obstacle-a", got)
	}
}

func TestBlocked(t *testing.T) {
	m := newTestMap("Obstacles")
	if !m.Blocked(170, 170) {
		t.Error("Blocked(170,170) = false, want true")
	}
	if m.Blocked(150, 170) {
		t.Error("Blocked(150,170) = true, want false")
	}
	if m.Blocked(-1, 170) {
		t.Error("Blocked(-1,170) = true, want false")
	}
}

func TestSamplesMatchCheckCollision(t *testing.T) {
	m := newTestMap("Obstacles")
	samples := m.Samples(150, 176, 20)
	if len(samples) != 8 {
		t.Fatalf("len(Samples) = %d, want 8", len(samples))
	}
	if !near(samples[0].X, 166) || !near(samples[0].Y, 176) {
		t.Errorf("sample 0 = %+v, want (166, 176)", samples[0].Point)
	}
	hits := 0
	for _, p := range samples {
		if p.Hit {
			hits++
		}
	}
	if hits == 0 || !m.CheckCollision(150, 176, 20) {
		t.Errorf("hits = %d, CheckCollision = %v; want both to report the obstacle", hits, m.CheckCollision(150, 176, 20))
	}
	for _, p := range newTestMap("").Samples(176, 176, 10) {
		if p.Hit {
			t.Error("sample hit on a map without an obstacle layer")
		}
	}
}
