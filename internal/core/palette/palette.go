// Package palette maps combatant positions to a fixed, cycling set of colors.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque sRGB color
type Color struct {
	R, G, B uint8
}

// RGBA is an sRGB color with an alpha channel
type RGBA struct {
	R, G, B, A uint8
}

var colors = [...]Color{
	{255, 99, 132},
	{54, 162, 235},
	{255, 206, 86},
	{75, 192, 192},
	{153, 102, 255},
	{255, 159, 64},
	{231, 233, 237},
	{102, 255, 102},
}

// Size is the number of distinct palette entries
const Size = len(colors)

// ColorFor returns the palette color for a lineup position; indices cycle
// through the palette so ColorFor(i) == ColorFor(i+Size).
func ColorFor(index int) Color {
	i := index % Size
	if i < 0 {
		i += Size
	}
	return colors[i]
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the color as "#rrggbb"
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// LinearMultiply scales every channel, alpha included, by factor in linear
// light and returns the premultiplied result. Composited over black this is
// exactly what a translucent fill of the color looks like.
func (c Color) LinearMultiply(factor float64) RGBA {
	factor = clampUnit(factor)
	r, g, b := c.colorful().LinearRgb()
	scaled := colorful.LinearRgb(r*factor, g*factor, b*factor).Clamped()
	sr, sg, sb := scaled.RGB255()
	return RGBA{R: sr, G: sg, B: sb, A: unitToByte(factor)}
}

// Opaque drops the alpha channel
func (c RGBA) Opaque() Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns the color as "#rrggbb", ignoring alpha
func (c RGBA) Hex() string {
	return c.Opaque().Hex()
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}
