// Package render turns gizmo draw commands into pixels and terminal cells.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is a 2D array of pixels that can be rendered to the terminal.
// Half-block characters give it double vertical resolution there.
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Resize reallocates the pixel buffer if the dimensions changed.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width = width
	fb.Height = height
	fb.Pixels = make([]color.RGBA, width*height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y). Out of range writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	fb.line(x0, y0, x1, y1, 0, c)
}

// DrawDottedLine draws every other run of dash pixels along the line.
func (fb *Framebuffer) DrawDottedLine(x0, y0, x1, y1, dash int, c color.RGBA) {
	fb.line(x0, y0, x1, y1, max(1, dash), c)
}

func (fb *Framebuffer) line(x0, y0, x1, y1, dash int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for i := 0; ; i++ {
		if dash == 0 || (i/dash)%2 == 0 {
			fb.SetPixel(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawSegment clips a floating-point segment to the buffer before
// rasterizing it, so far off-screen endpoints do not stall Bresenham.
func (fb *Framebuffer) DrawSegment(x0, y0, x1, y1 float64, dotted bool, c color.RGBA) {
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(fb.Width-1), float64(fb.Height-1))
	if !ok {
		return
	}
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	if dotted {
		fb.DrawDottedLine(ix0, iy0, ix1, iy1, 2, c)
		return
	}
	fb.DrawLine(ix0, iy0, ix1, iy1, c)
}

// FillTriangle fills a screen-space triangle using barycentric coverage.
func (fb *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c color.RGBA) {
	minX := max(0, int(math.Floor(min(x0, x1, x2))))
	maxX := min(fb.Width-1, int(math.Ceil(max(x0, x1, x2))))
	minY := max(0, int(math.Floor(min(y0, y1, y2))))
	maxY := min(fb.Height-1, int(math.Ceil(max(y0, y1, y2))))

	area := edge(x0, y0, x1, y1, x2, y2)
	if math.Abs(area) < 1e-9 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(x1, y1, x2, y2, px, py) / area
			w1 := edge(x2, y2, x0, y0, px, py) / area
			w2 := 1 - w0 - w1
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				fb.SetPixel(x, y, c)
			}
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Region codes for Cohen-Sutherland clipping.
const (
	clipLeft = 1 << iota
	clipRight
	clipBottom
	clipTop
)

func outcode(x, y, maxX, maxY float64) int {
	code := 0
	switch {
	case x < 0:
		code |= clipLeft
	case x > maxX:
		code |= clipRight
	}
	switch {
	case y < 0:
		code |= clipTop
	case y > maxY:
		code |= clipBottom
	}
	return code
}

// clipSegment clips a segment to [0,maxX]x[0,maxY].
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	c0 := outcode(x0, y0, maxX, maxY)
	c1 := outcode(x1, y1, maxX, maxY)
	for {
		switch {
		case c0|c1 == 0:
			return x0, y0, x1, y1, true
		case c0&c1 != 0:
			return 0, 0, 0, 0, false
		}

		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&clipTop != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&clipBottom != 0:
			x = x0 + (x1-x0)*(maxY-y0)/(y1-y0)
			y = maxY
		case out&clipRight != 0:
			y = y0 + (y1-y0)*(maxX-x0)/(x1-x0)
			x = maxX
		default:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outcode(x0, y0, maxX, maxY)
		} else {
			x1, y1 = x, y
			c1 = outcode(x1, y1, maxX, maxY)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
