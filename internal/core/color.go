package core

import "math/bits"

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board elements.
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

// tileRamp is indexed by log2(tile) - 1: 2, 4, 8, ... 2048.
var tileRamp = []Color{
	ColorWhite,
	ColorBrightWhite,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorBrightMagenta,
}

// TileColor returns the color used to draw a tile value.
// Empty cells are gray; tiles past 2048 share the last color.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	exp := bits.Len(uint(value)) - 1
	if exp < 1 {
		return tileRamp[0]
	}
	return tileRamp[min(exp-1, len(tileRamp)-1)]
}
