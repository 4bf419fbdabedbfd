package tilemap

import "math"

// Frame is one step of a tile animation.
type Frame struct {
	GID      uint32
	Duration float64 // seconds
}

// Animation cycles through frames on the map clock.
type Animation struct {
	Frames []Frame

	total   float64
	current int
}

// NewAnimation builds an animation starting on its first frame.
func NewAnimation(frames []Frame) *Animation {
	a := &Animation{Frames: frames}
	for _, f := range frames {
		a.total += f.Duration
	}
	return a
}

// Length is the duration of one full cycle in seconds.
func (a *Animation) Length() float64 {
	return a.total
}

// Update selects the frame active at clock seconds. The frame whose
// cumulative end time is the first to reach clock mod Length wins.
func (a *Animation) Update(clock float64) {
	if len(a.Frames) == 0 || a.total <= 0 {
		a.current = 0
		return
	}
	t := math.Mod(clock, a.total)
	if t < 0 {
		t += a.total
	}
	acc := 0.0
	for i, f := range a.Frames {
		acc += f.Duration
		if t <= acc {
			a.current = i
			return
		}
	}
	a.current = len(a.Frames) - 1
}

// GID returns the tile shown by the current frame.
func (a *Animation) GID() uint32 {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Frames[a.current].GID
}

// Animations returns the animations keyed by the GID of the animated tile.
func (m *Map) Animations() map[uint32]*Animation {
	return m.animations
}

// SetAnimation registers or replaces the animation for gid.
func (m *Map) SetAnimation(gid uint32, a *Animation) {
	if m.animations == nil {
		m.animations = make(map[uint32]*Animation)
	}
	m.animations[gid] = a
	a.Update(m.clock)
}

// Clock returns the seconds accumulated by Update.
func (m *Map) Clock() float64 {
	return m.clock
}

// Update advances the animation clock by dt seconds.
func (m *Map) Update(dt float64) {
	m.clock += dt
	for _, a := range m.animations {
		a.Update(m.clock)
	}
}

// DisplayGID returns the GID to draw for gid this frame.
func (m *Map) DisplayGID(gid uint32) uint32 {
	if gid == 0 {
		return 0
	}
	if a, ok := m.animations[gid]; ok {
		if shown := a.GID(); shown != 0 {
			return shown
		}
	}
	return gid
}
