package core

// Color is a foreground colour for a screen cell. The platform maps these to
// terminal colours; games only pick from the palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorOrange
	ColorGray
	ColorCyan
	ColorBrightGreen
	ColorBrightRed
)
