package tilemap

import "math/rand"

// Object group names recognised by Spawns.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemySpawn  = "EnemySpawn"
	GroupCampfire    = "Campfire"
)

const (
	cornerPadding    = 100.0
	edgePadding      = 50.0
	edgeStep         = 100.0
	enemyClearRadius = 20.0
	minClearSpawns   = 10
)

// SpawnKind selects a family of spawn points.
type SpawnKind int

const (
	SpawnPlayer SpawnKind = iota
	SpawnCampfire
	SpawnEnemy
)

// Spawns holds the spawn points of one map.
type Spawns struct {
	Players  []Point
	Campfire Point
	Enemies  []Point

	center Point
	width  float64
	height float64
}

// NewSpawns derives spawn points for m. Object groups named PlayerSpawn,
// EnemySpawn and Campfire override the generated defaults. Generated enemy
// points that sit on an obstacle are dropped unless fewer than ten survive.
func NewSpawns(m *Map) *Spawns {
	w := float64(m.WidthInPixels())
	h := float64(m.HeightInPixels())
	s := &Spawns{
		Players:  DefaultPlayerSpawns(w, h),
		Campfire: m.Center(),
		center:   m.Center(),
		width:    w,
		height:   h,
	}

	if objs := m.ObjectsIn(GroupPlayerSpawn); len(objs) > 0 {
		s.Players = s.Players[:0]
		for _, o := range objs {
			s.Players = append(s.Players, o.Center())
		}
	}
	if objs := m.ObjectsIn(GroupCampfire); len(objs) > 0 {
		s.Campfire = objs[0].Center()
	}

	if objs := m.ObjectsIn(GroupEnemySpawn); len(objs) > 0 {
		for _, o := range objs {
			s.Enemies = append(s.Enemies, o.Center())
		}
	} else {
		s.Enemies = FilterClear(m, DefaultEnemySpawns(w, h), enemyClearRadius)
	}
	return s
}

// DefaultPlayerSpawns returns the four corners inset by 100 px, clockwise
// from the bottom-left.
func DefaultPlayerSpawns(w, h float64) []Point {
	return []Point{
		{X: cornerPadding, Y: h - cornerPadding},
		{X: w - cornerPadding, Y: h - cornerPadding},
		{X: w - cornerPadding, Y: cornerPadding},
		{X: cornerPadding, Y: cornerPadding},
	}
}

// DefaultEnemySpawns lines the map edges with points every 100 px, 50 px in
// from the border: top and bottom for each column, then left and right for
// each row.
func DefaultEnemySpawns(w, h float64) []Point {
	var pts []Point
	for x := edgePadding; x < w-edgePadding; x += edgeStep {
		pts = append(pts, Point{X: x, Y: edgePadding}, Point{X: x, Y: h - edgePadding})
	}
	for y := edgePadding; y < h-edgePadding; y += edgeStep {
		pts = append(pts, Point{X: edgePadding, Y: y}, Point{X: w - edgePadding, Y: y})
	}
	return pts
}

// FilterClear keeps the points where a circle of radius fits. If fewer than
// ten remain the input is returned unchanged.
func FilterClear(m *Map, pts []Point, radius float64) []Point {
	clear := make([]Point, 0, len(pts))
	for _, p := range pts {
		if !m.CheckCollision(p.X, p.Y, radius) {
			clear = append(clear, p)
		}
	}
	if len(clear) < minClearSpawns {
		return pts
	}
	return clear
}

// SpawnPoint returns the index-th point of a kind, or the map centre when it
// does not exist.
func (s *Spawns) SpawnPoint(kind SpawnKind, index int) Point {
	switch kind {
	case SpawnPlayer:
		if index >= 0 && index < len(s.Players) {
			return s.Players[index]
		}
	case SpawnCampfire:
		if index == 0 {
			return s.Campfire
		}
	case SpawnEnemy:
		if index >= 0 && index < len(s.Enemies) {
			return s.Enemies[index]
		}
	}
	return s.center
}

// RandomEnemySpawn picks a listed enemy point, or a random point on a random
// map border when none are listed.
func (s *Spawns) RandomEnemySpawn(rng *rand.Rand) Point {
	if len(s.Enemies) > 0 {
		return s.Enemies[rng.Intn(len(s.Enemies))]
	}
	switch rng.Intn(4) {
	case 0:
		return Point{X: rng.Float64() * s.width, Y: 0}
	case 1:
		return Point{X: s.width, Y: rng.Float64() * s.height}
	case 2:
		return Point{X: rng.Float64() * s.width, Y: s.height}
	default:
		return Point{X: 0, Y: rng.Float64() * s.height}
	}
}
