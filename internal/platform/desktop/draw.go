package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-dodger/internal/core"
	"github.com/vovakirdan/neon-dodger/internal/games/dodger"
)

// Debug font glyph size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var backgroundColor = color.RGBA{R: 8, G: 6, B: 20, A: 255}

// palette maps core colors to the window's neon palette.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 200, G: 200, B: 220, A: 255},
	core.ColorCyan:    {R: 0, G: 240, B: 255, A: 255},
	core.ColorViolet:  {R: 170, G: 90, B: 255, A: 255},
	core.ColorPink:    {R: 255, G: 60, B: 170, A: 255},
	core.ColorGreen:   {R: 60, G: 255, B: 140, A: 255},
	core.ColorBlue:    {R: 40, G: 140, B: 255, A: 255},
	core.ColorYellow:  {R: 255, G: 230, B: 80, A: 255},
	core.ColorGray:    {R: 120, G: 120, B: 140, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
}

// paletteColor returns the RGBA for c, falling back to the default color.
func paletteColor(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// fade scales a premultiplied color by alpha in [0, 1].
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// obstacleColor returns the fill color of an obstacle kind.
func obstacleColor(k dodger.ObstacleKind) color.RGBA {
	if k == dodger.Gate {
		return paletteColor(core.ColorGreen)
	}
	return paletteColor(core.ColorPink)
}

// centeredX returns the x at which text is centered in width pixels.
func centeredX(text string, width int) int {
	return (width - len(text)*glyphW) / 2
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawWorld(screen, g.snap)
	drawHUD(screen, g.snap, g.width)

	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, centeredX(g.status, g.width), g.height-glyphH-8)
	}
}

// drawWorld draws lanes, floor, obstacles, player and particles.
func drawWorld(screen *ebiten.Image, snap dodger.Snapshot) {
	w := snap.World
	scale := float32(w.Scale)
	floor := float32(w.Floor)

	lane := fade(paletteColor(core.ColorBlue), 0.3)
	for _, x := range w.Lanes {
		vector.StrokeLine(screen, float32(x), 0, float32(x), floor, scale, lane, false)
	}
	vector.StrokeLine(screen, 0, floor, float32(w.Width), floor, 2*scale, paletteColor(core.ColorGreen), false)

	for _, o := range snap.Obstacles {
		c := obstacleColor(o.Kind)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), fade(c, 0.6), false)
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), scale, c, false)
	}

	p := snap.Player.Rect()
	glow := 4 * scale
	vector.FillRect(screen, float32(p.X)-glow, float32(p.Y)-glow, float32(p.W)+2*glow, float32(p.H)+2*glow,
		fade(paletteColor(core.ColorCyan), 0.2), false)
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), paletteColor(core.ColorCyan), false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), scale, paletteColor(core.ColorViolet), false)

	spark := paletteColor(core.ColorCyan)
	for _, pt := range snap.Particles {
		vector.FillCircle(screen, float32(pt.X), float32(pt.Y), 2*scale, fade(spark, pt.Alpha), false)
	}
}

// drawHUD draws the score line and the state overlays.
func drawHUD(screen *ebiten.Image, snap dodger.Snapshot, width int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 12, 8)
	best := fmt.Sprintf("Best: %d", snap.Best)
	ebitenutil.DebugPrintAt(screen, best, width-len(best)*glyphW-12, 8)

	switch snap.State {
	case dodger.StateIdle:
		drawOverlay(screen, snap.World, "NEON DODGER", "Press Enter or tap to play")
	case dodger.StatePaused:
		drawOverlay(screen, snap.World, "PAUSED", "Press P to resume")
	case dodger.StateGameOver:
		drawOverlay(screen, snap.World, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best),
			"R restart  C share  Esc quit")
	}
}

// drawOverlay dims the playfield and prints centered lines.
func drawOverlay(screen *ebiten.Image, w dodger.World, lines ...string) {
	width := int(w.Width)
	vector.FillRect(screen, 0, 0, float32(w.Width), float32(w.Height), fade(backgroundColor, 0.6), false)

	y := int(w.Height)/2 - len(lines)*glyphH
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, centeredX(line, width), y)
		y += glyphH * 2
	}
}
