package tilemap

import "testing"

func TestAnimationUpdate(t *testing.T) {
	a := NewAnimation([]Frame{{GID: 10, Duration: 0.1}, {GID: 11, Duration: 0.2}, {GID: 12, Duration: 0.3}})
	if !near(a.Length(), 0.6) {
		t.Fatalf("Length() = %v, want 0.6", a.Length())
	}

	tests := []struct {
		clock float64
		want  uint32
	}{
		{0, 10},
		{0.05, 10},
		{0.1, 10},
		{0.15, 11},
		{0.3, 11},
		{0.35, 12},
		{0.59, 12},
		{0.65, 10},
		{1.4, 11},
	}
	for _, tt := range tests {
		a.Update(tt.clock)
		if got := a.GID(); got != tt.want {
			t.Errorf("Update(%v): GID() = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestAnimationZeroLength(t *testing.T) {
	a := NewAnimation([]Frame{{GID: 7, Duration: 0}, {GID: 8, Duration: 0}})
	a.Update(3.2)
	if got := a.GID(); got != 7 {
		t.Errorf("GID() = %d, want 7", got)
	}

	empty := NewAnimation(nil)
	empty.Update(1)
	if got := empty.GID(); got != 0 {
		t.Errorf("empty GID() = %d, want 0", got)
	}
}

func TestMapUpdateDrivesAnimations(t *testing.T) {
	m := &Map{Width: 1, Height: 1, TileWidth: 16, TileHeight: 16}
	m.SetAnimation(3, NewAnimation([]Frame{{GID: 3, Duration: 0.1}, {GID: 4, Duration: 0.2}}))

	if got := m.DisplayGID(3); got != 3 {
		t.Fatalf("DisplayGID(3) at start = %d, want 3", got)
	}
	m.Update(0.15)
	if got := m.DisplayGID(3); got != 4 {
		t.Errorf("DisplayGID(3) after 0.15s = %d, want 4", got)
	}
	m.Update(0.2)
	if got := m.DisplayGID(3); got != 3 {
		t.Errorf("DisplayGID(3) after 0.35s = %d, want 3", got)
	}
	if !near(m.Clock(), 0.35) {
		t.Errorf("Clock() = %v, want 0.35", m.Clock())
	}

	if got := m.DisplayGID(9); got != 9 {
		t.Errorf("DisplayGID(9) = %d, want 9 for a static tile", got)
	}
	if got := m.DisplayGID(0); got != 0 {
		t.Errorf("DisplayGID(0) = %d, want 0", got)
	}
}
