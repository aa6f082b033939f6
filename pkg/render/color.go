package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/gizmo/pkg/geometry"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ToRGBA converts a linear [0,1] color to 8-bit RGBA, clamping each channel.
// Alpha is premultiplied as color.RGBA requires.
func ToRGBA(c geometry.Color) color.RGBA {
	a := math.Max(0, math.Min(1, c.A))
	r, g, b := colorful.Color{R: c.R * a, G: c.G * a, B: c.B * a}.Clamped().RGB255()
	return color.RGBA{r, g, b, uint8(math.Round(a * 255))}
}

