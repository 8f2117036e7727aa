package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the board, pieces and chrome.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBrightWhite
	ColorPink
	ColorSky
	ColorBrightGreen
	ColorBrightMagenta
	ColorOrange
	ColorBrightYellow
	ColorBrightBlue
)

// ansiCodes holds the ANSI 256-color code of each Color.
// ColorDefault has none and keeps the terminal's foreground.
var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorGray:          "245",
	ColorBrightWhite:   "15",
	ColorPink:          "198",
	ColorSky:           "45",
	ColorBrightGreen:   "10",
	ColorBrightMagenta: "13",
	ColorOrange:        "208",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
}

// ANSI returns the 256-color code, or "" for ColorDefault and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
