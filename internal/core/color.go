package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the game and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Cell is a single character on the screen. A non-empty Hex overrides Color
// with a true-colour value such as "#ff8800".
type Cell struct {
	Rune  rune
	Color Color
	Hex   string
}

// blankCell is what a cleared screen holds.
var blankCell = Cell{Rune: ' '}

// SameStyle reports whether two cells render with the same colour.
func (c Cell) SameStyle(o Cell) bool {
	return c.Color == o.Color && c.Hex == o.Hex
}
