package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Palette used by the dodger renderer.
const (
	ColorDefault Color = iota
	ColorCyan          // player, dash trail
	ColorViolet        // player accent
	ColorPink          // bar obstacles
	ColorGreen         // gate obstacles, floor line
	ColorBlue          // lane guides
	ColorYellow        // HUD highlights
	ColorGray          // dimmed text
	ColorWhite
)
