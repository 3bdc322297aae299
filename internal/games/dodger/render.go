package dodger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
)

// Visual characters for cell rendering
const (
	PlayerChar     = '█'
	BarChar        = '▓'
	GateChar       = '▒'
	FloorChar      = '═'
	LaneChar       = '┆'
	ParticleBright = '•'
	ParticleDim    = '·'
)

// CellMapper converts world pixels into terminal cells.
type CellMapper struct {
	CellW, CellH float64
}

// NewCellMapper creates a mapper from the terminal config, falling back
// to 8x16 cells when the config is unset.
func NewCellMapper(term config.TerminalConfig) CellMapper {
	m := CellMapper{CellW: term.CellWidth, CellH: term.CellHeight}
	if m.CellW <= 0 {
		m.CellW = 8
	}
	if m.CellH <= 0 {
		m.CellH = 16
	}
	return m
}

// Viewport returns the world viewport covering cols x rows cells.
func (m CellMapper) Viewport(cols, rows int) Viewport {
	return Viewport{Width: float64(cols) * m.CellW, Height: float64(rows) * m.CellH, Scale: 1}
}

// Col returns the cell column containing world x.
func (m CellMapper) Col(x float64) int {
	return int(math.Floor(x / m.CellW))
}

// Row returns the cell row containing world y.
func (m CellMapper) Row(y float64) int {
	return int(math.Floor(y / m.CellH))
}

// Span returns the cell rectangle covered by a world rectangle.
// Every non-empty rectangle covers at least one cell.
func (m CellMapper) Span(r core.Rect) (x, y, w, h int) {
	x, y = m.Col(r.X), m.Row(r.Y)
	w = int(math.Ceil(r.Right()/m.CellW)) - x
	h = int(math.Ceil(r.Bottom()/m.CellH)) - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

// Render draws a snapshot into the screen buffer.
func Render(dst *core.Screen, snap Snapshot, m CellMapper) {
	dst.Clear()

	floorRow := m.Row(snap.World.Floor)

	for _, x := range snap.World.Lanes {
		dst.DrawVLine(m.Col(x), 1, floorRow-1, LaneChar, core.ColorBlue)
	}
	dst.DrawHLine(0, floorRow, dst.Width(), FloorChar, core.ColorGreen)

	for _, o := range snap.Obstacles {
		x, y, w, h := m.Span(o.Rect())
		switch o.Kind {
		case Bar:
			dst.FillArea(x, y, w, h, BarChar, core.ColorPink)
		case Gate:
			dst.FillArea(x, y, w, h, GateChar, core.ColorGreen)
		}
	}

	px, py, pw, ph := m.Span(snap.Player.Rect())
	dst.FillArea(px, py, pw, ph, PlayerChar, core.ColorCyan)

	for _, p := range snap.Particles {
		if p.Alpha >= 0.5 {
			dst.SetColored(m.Col(p.X), m.Row(p.Y), ParticleBright, core.ColorCyan)
		} else {
			dst.SetColored(m.Col(p.X), m.Row(p.Y), ParticleDim, core.ColorBlue)
		}
	}

	drawHUD(dst, snap)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "NEON DODGER", "Press Enter to play  |  ? for controls")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  R restart  C share", snap.Score, snap.Best))
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorYellow)

	best := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorViolet)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorViolet)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorCyan)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
