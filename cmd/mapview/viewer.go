package main

import (
	"fmt"

	"github.com/automoto/campfire/shared/tilemap"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Rows reserved at the bottom for the status line.
const statusRows = 2

var (
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHit      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
	styleFree     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// viewer shows the obstacle layer one cell per tile and tests collisions
// under a cursor that moves in pixel steps.
type viewer struct {
	screen tcell.Screen
	m      *tilemap.Map
	radius float64

	// Cursor in map pixels.
	x, y float64
	// Pixels per cursor step.
	step float64
	// Top-left tile shown on screen.
	originX, originY int
}

func newViewer(screen tcell.Screen, m *tilemap.Map, radius float64) *viewer {
	c := m.Center()
	return &viewer{
		screen: screen,
		m:      m,
		radius: radius,
		x:      c.X,
		y:      c.Y,
		step:   float64(m.TileWidth) / 4,
	}
}

func (v *viewer) run() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey moves the cursor or changes the test radius. It returns false to quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.x -= v.step
	case tcell.KeyRight:
		v.x += v.step
	case tcell.KeyUp:
		v.y -= v.step
	case tcell.KeyDown:
		v.y += v.step
	}
	v.x = clampPixel(v.x, v.m.WidthInPixels())
	v.y = clampPixel(v.y, v.m.HeightInPixels())

	switch ev.Rune() {
	case 'q':
		return false
	case '+':
		v.radius += 2
	case '-':
		if v.radius >= 2 {
			v.radius -= 2
		}
	}
	return true
}

func clampPixel(v float64, size int) float64 {
	if v < 0 {
		return 0
	}
	if max := float64(size - 1); v > max {
		return max
	}
	return v
}

// cursorTile is the tile under the cursor.
func (v *viewer) cursorTile() (int, int) {
	return int(v.x) / v.m.TileWidth, int(v.y) / v.m.TileHeight
}

// follow scrolls so the cursor tile stays on screen.
func (v *viewer) follow(w, h int) {
	tx, ty := v.cursorTile()
	if tx < v.originX {
		v.originX = tx
	}
	if tx >= v.originX+w {
		v.originX = tx - w + 1
	}
	if ty < v.originY {
		v.originY = ty
	}
	if ty >= v.originY+h {
		v.originY = ty - h + 1
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	mapH := h - statusRows
	if mapH < 1 {
		mapH = 1
	}
	v.follow(w, mapH)

	obstacles := v.m.ObstacleLayer()
	for sy := 0; sy < mapH; sy++ {
		ty := v.originY + sy
		if ty >= v.m.Height {
			break
		}
		for sx := 0; sx < w; sx++ {
			tx := v.originX + sx
			if tx >= v.m.Width {
				break
			}
			r, style := '.', styleFloor
			if obstacles != nil && obstacles.Tile(tx, ty) != 0 {
				r, style = '#', styleObstacle
			}
			v.screen.SetContent(sx, sy, r, nil, style)
		}
	}

	hit := v.m.CheckCollision(v.x, v.y, v.radius)
	tx, ty := v.cursorTile()
	cursorStyle := styleFree
	if hit {
		cursorStyle = styleHit
	}
	v.screen.SetContent(tx-v.originX, ty-v.originY, '@', nil, cursorStyle)

	v.putString(0, mapH, w, v.status(hit), styleStatus)
	v.putString(0, mapH+1, w, "arrows move  +/- radius  q quit", styleStatus)
	v.screen.Show()
}

func (v *viewer) status(hit bool) string {
	state := "free"
	if hit {
		state = "COLLISION"
	}
	tx, ty := v.cursorTile()
	return fmt.Sprintf("%s  (%.0f, %.0f) px  tile %d,%d  r=%.0f  %s", v.m.Name, v.x, v.y, tx, ty, v.radius, state)
}

// putString writes s from (x, y), cut to fit in w columns.
func (v *viewer) putString(x, y, w int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, w, "…")
	col := x
	for _, r := range s {
		v.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
