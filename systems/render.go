package systems

import (
	"image/color"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/automoto/campfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view converts world positions to screen positions and culls off-screen shapes.
type view struct {
	offX, offY             float64
	minX, maxX, minY, maxY float64
}

// Culling padding in pixels.
const viewPadding = 64.0

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - viewPadding,
		maxX: camera.Position.X + width/2 + viewPadding,
		minY: camera.Position.Y - height/2 - viewPadding,
		maxY: camera.Position.Y + height/2 + viewPadding,
	}, true
}

func (v view) visible(x, y, r float64) bool {
	return x+r >= v.minX && x-r <= v.maxX && y+r >= v.minY && y-r <= v.maxY
}

func (v view) screen(x, y float64) (float32, float32) {
	return float32(x + v.offX), float32(y + v.offY)
}

// DrawActors renders the campfire, enemies, players and projectiles as shapes.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	drawCampfire(ecs, screen, v)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		x, y := components.Object.Get(e).Center()
		if !v.visible(x, y, enemy.Radius) {
			return
		}
		drawBody(screen, v, x, y, enemy.Radius, enemy.Rotation, enemy.Color)
		drawHealthPip(screen, v, x, y-enemy.Radius-6, enemy.Radius*2, components.Health.Get(e))
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !components.Health.Get(e).IsAlive() {
			return
		}
		x, y := components.Object.Get(e).Center()
		if !v.visible(x, y, player.Radius) {
			return
		}
		drawBody(screen, v, x, y, player.Radius, player.Rotation, player.Color)

		// Aim marker just outside the body.
		reach := player.Radius + cfg.Player.MuzzleOffset
		ax, ay := v.screen(x+player.AimX*reach, y+player.AimY*reach)
		vector.FillCircle(screen, ax, ay, 3, cfg.White, true)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if !p.Active {
			return
		}
		x, y := components.Object.Get(e).Center()
		if !v.visible(x, y, p.Radius) {
			return
		}
		sx, sy := v.screen(x, y)
		vector.FillCircle(screen, sx, sy, float32(p.Radius), p.Color, true)
	})
}

// drawBody draws a filled circle with a line showing its facing.
func drawBody(screen *ebiten.Image, v view, x, y, radius, rotation float64, clr color.RGBA) {
	sx, sy := v.screen(x, y)
	vector.FillCircle(screen, sx, sy, float32(radius), clr, true)
	vector.StrokeCircle(screen, sx, sy, float32(radius), 1.5, cfg.Black, true)
	dx, dy := gamemath.Direction(rotation)
	vector.StrokeLine(screen, sx, sy, sx+float32(dx*radius), sy+float32(dy*radius), 2, cfg.Black, true)
}

func drawCampfire(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	entry, ok := tags.Campfire.First(ecs.World)
	if !ok {
		return
	}
	fire := components.Campfire.Get(entry)
	sx, sy := v.screen(fire.X, fire.Y)
	if fire.Glow > 0 {
		vector.FillCircle(screen, sx, sy, float32(fire.Radius*2*fire.Glow), cfg.Campfire.GlowColor, true)
		vector.FillCircle(screen, sx, sy, float32(fire.Radius*fire.Glow), cfg.Campfire.Color, true)
	}
	vector.StrokeCircle(screen, sx, sy, float32(fire.Radius), 2, cfg.DarkRed, true)
	drawHealthPip(screen, v, fire.X, fire.Y-fire.Radius-10, fire.Radius*3, components.Health.Get(entry))
}

// drawHealthPip draws a small bar centred above an actor once it is hurt.
func drawHealthPip(screen *ebiten.Image, v view, x, y, width float64, hp *components.HealthData) {
	ratio := hp.Ratio()
	if ratio >= 1 || ratio <= 0 {
		return
	}
	sx, sy := v.screen(x-width/2, y)
	vector.FillRect(screen, sx, sy, float32(width), 3, cfg.UI.HealthBarBgColor, false)
	vector.FillRect(screen, sx, sy, float32(width*ratio), 3, cfg.UI.HealthBarFgColor, false)
}
