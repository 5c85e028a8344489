package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette shared by every frontend
var (
	ColorBackground   = mustHex("#ffffff") // White canvas
	ColorText         = mustHex("#000000") // Black text and button border
	ColorWater        = mustHex("#0000ff") // Blue water particles
	ColorSolute       = mustHex("#ff0000") // Red solute, fragments, death message
	ColorMembrane     = mustHex("#00ff00") // Green membrane while alive
	ColorMembraneDead = mustHex("#006400") // Dark green membrane while dying
	ColorButton       = mustHex("#c8c8c8") // Grey retry control
)

// mustHex parses a palette literal, panicking on malformed input
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToTcell converts a palette colour to a 24-bit tcell colour
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ToRGBA converts a palette colour to an opaque image/color value
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
