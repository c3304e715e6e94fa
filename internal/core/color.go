package core

// Color is a foreground colour for a screen cell. The platform maps it to an
// ANSI colour.
type Color uint8

// Colours used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorGray
)
