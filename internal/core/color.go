package core

import "fmt"

// Color is a foreground color for a screen cell: either an ANSI 256-color
// code ("208") or a hex triplet ("#32cd32"). The empty string means the
// terminal default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorWhite       Color = "7"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBrightWhite Color = "15"
	ColorOrange      Color = "208"
	ColorGray        Color = "245"
	ColorDarkGray    Color = "238"
)

// RGB builds a hex Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// Lerp blends two 8-bit channels; t is clamped to [0, 1].
func Lerp(from, to uint8, t float64) uint8 {
	t = min(max(t, 0), 1)
	return uint8(float64(from) + (float64(to)-float64(from))*t)
}
