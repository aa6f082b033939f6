package render

import (
	"image"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// ▀ with fg=top pixel and bg=bottom pixel
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, topY)),
					Bg: rgbaToColor(fb.GetPixel(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// DrawLabels writes label text over the cells drawn by Draw. Label anchors
// are in framebuffer pixels; each cell row covers two of them.
func (fb *Framebuffer) DrawLabels(scr uv.Screen, area uv.Rectangle, labels []ScreenLabel) {
	for _, l := range labels {
		row := area.Min.Y + l.Y/2
		if row < area.Min.Y || row >= area.Max.Y {
			continue
		}
		col := area.Min.X + l.X
		for _, r := range l.Text {
			if col >= area.Max.X {
				break
			}
			if col >= area.Min.X {
				bg := fb.GetPixel(col-area.Min.X, l.Y)
				scr.SetCell(col, row, &uv.Cell{
					Content: string(r),
					Width:   1,
					Style:   uv.Style{Fg: rgbaToColor(l.Color), Bg: rgbaToColor(bg)},
				})
			}
			col++
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalRenderer owns the screen area a framebuffer is shown in.
type TerminalRenderer struct {
	screen uv.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for a width x height cell screen.
func NewTerminalRenderer(scr uv.Screen, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: scr,
		width:  width,
		height: height,
	}
}

// FramebufferSize returns the pixel size matching the cell area.
func (t *TerminalRenderer) FramebufferSize() (int, int) {
	return t.width, t.height * 2
}

// Render draws the framebuffer and its labels onto the screen.
func (t *TerminalRenderer) Render(fb *Framebuffer, labels []ScreenLabel) {
	area := uv.Rectangle{Max: image.Point{X: t.width, Y: t.height}}
	fb.Draw(t.screen, area)
	fb.DrawLabels(t.screen, area, labels)
}

// Flush pushes pending cells to the terminal when the screen supports it.
func (t *TerminalRenderer) Flush() error {
	switch s := t.screen.(type) {
	case interface{ Display() error }:
		return s.Display()
	case interface{ Flush() error }:
		return s.Flush()
	}
	return nil
}
