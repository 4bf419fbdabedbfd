package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/fonts"
	"github.com/automoto/campfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the per-player health bars, the wave status and the
// wave banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawPlayerBars(ecs, screen)
	drawWaveStatus(ecs, screen)
	drawBanner(ecs, screen)
	drawGameOver(ecs, screen)
}

func drawPlayerBars(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	margin := float32(cfg.UI.HealthBarMargin)
	barW, barH := float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		hp := components.Health.Get(e)
		y := margin + float32(player.Index)*(barH+margin)

		// Background (dark gray)
		vector.FillRect(screen, margin, y, barW, barH, cfg.UI.HealthBarBgColor, false)
		// Current HP in the player's colour
		vector.FillRect(screen, margin, y, barW*float32(hp.Ratio()), barH, player.Color, false)

		label := fmt.Sprintf("P%d %s", player.Index+1, player.Gun)
		if !hp.IsAlive() {
			label = fmt.Sprintf("P%d down", player.Index+1)
		}
		text.Draw(screen, label, face, int(margin+barW+margin), int(y+barH), cfg.UI.TextColor)
	})
}

func drawWaveStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	waveEntry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(waveEntry)
	face := fonts.HUD.Get()

	lines := []string{WaveStatusText(wave, CountEnemies(ecs))}
	if entry, ok := tags.Campfire.First(ecs.World); ok {
		hp := components.Health.Get(entry)
		lines = append(lines, fmt.Sprintf("Campfire %.0f/%.0f", hp.Current, hp.Max))
	}
	if wave.LastUpgrade != "" {
		lines = append(lines, "Last upgrade: "+wave.LastUpgrade)
	}
	if sessionEntry, ok := components.Session.First(ecs.World); ok {
		s := components.Session.Get(sessionEntry)
		lines = append(lines,
			fmt.Sprintf("Score %d", s.Score),
			fmt.Sprintf("Best wave %d", s.BestWave))
	}

	width := screen.Bounds().Dx()
	lineH := fonts.Height(face)
	for i, line := range lines {
		x := width - fonts.Width(face, line) - int(cfg.UI.HealthBarMargin)
		drawShadowed(screen, line, face, x, int(cfg.UI.HealthBarMargin)+lineH*(i+1), cfg.UI.TextColor)
	}
}

// WaveStatusText is the one-line wave summary shown in the corner.
func WaveStatusText(w *components.WaveData, alive int) string {
	switch w.State {
	case components.WavePreparing:
		return fmt.Sprintf("Wave %d in %.0f", w.Number, math.Ceil(w.Countdown))
	case components.WaveActive:
		return fmt.Sprintf("Wave %d - enemies %d", w.Number, alive+w.Remaining)
	case components.WaveCompleted:
		return fmt.Sprintf("Wave %d cleared", w.Number)
	}
	return "Get ready"
}

func drawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	waveEntry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(waveEntry)
	if !wave.BannerActive || wave.BannerAlpha <= 0 {
		return
	}
	face := fonts.Banner.Get()
	clr := fadeColor(cfg.UI.BannerColor, wave.BannerAlpha)
	drawCentered(screen, wave.Banner, face, screen.Bounds().Dy()/3, clr)
}

func drawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if !s.GameOver {
		return
	}
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), cfg.UI.ShadowColor, false)

	mid := bounds.Dy() / 2
	drawCentered(screen, "The fire went out", fonts.Banner.Get(), mid, cfg.UI.BannerColor)
	summary := fmt.Sprintf("Score %d  Kills %d  Best %d", s.Score, s.Kills, s.BestScore)
	drawCentered(screen, summary, fonts.HUD.Get(), mid+fonts.Height(fonts.Banner.Get()), cfg.UI.TextColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - fonts.Width(face, s)) / 2
	drawShadowed(screen, s, face, x, y, clr)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	_, _, _, a := clr.RGBA()
	shadow := cfg.UI.ShadowColor
	shadow.A = uint8(uint32(shadow.A) * (a >> 8) / 255)
	text.Draw(screen, s, face, x+2, y+2, shadow)
	text.Draw(screen, s, face, x, y, clr)
}

// fadeColor scales a colour's alpha, keeping it premultiplied.
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
