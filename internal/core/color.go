package core

// Color is the foreground of a screen cell. The zero value is the
// terminal's own color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorPink
	ColorGray
	numColors
)

var ansiCodes = [numColors]string{
	ColorRed:          "1",
	ColorYellow:       "3",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorPink:         "213",
	ColorGray:         "245",
}

// ANSI returns the 256-color palette code of c, or "" for the default and
// unknown colors.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}

// Bold reports whether c is drawn bold. Alerts are.
func (c Color) Bold() bool {
	return c == ColorBrightRed || c == ColorBrightYellow
}

// Palette returns every defined color except the default.
func Palette() []Color {
	colors := make([]Color, 0, numColors-1)
	for c := ColorDefault + 1; c < numColors; c++ {
		colors = append(colors, c)
	}
	return colors
}
