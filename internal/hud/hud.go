// Package hud draws a text overlay describing the current view.
//
// The overlay is drawn onto a copy of a frame (the window's presentation
// image or an exported still), never onto the engine's buffer.
package hud

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal"
)

// Layout of the overlay box, in pixels.
const (
	margin  = 6
	padding = 4
)

var (
	face     = basicfont.Face7x13
	textFg   = image.NewUniform(color.White)
	backdrop = image.NewUniform(color.NRGBA{A: 0xA0})
)

// Lines returns the overlay text for f rendered over view. frames is the
// number of completed render passes.
func Lines(f fractal.Fractal, view *fractal.ViewState, frames uint64) []string {
	p := message.NewPrinter(language.English)
	x, y := view.Pan()
	return []string{
		p.Sprintf("%s, %d iterations", f.Kind(), f.Iterations()),
		p.Sprintf("scale %.2f px/unit", view.Scale()),
		p.Sprintf("center %.6f, %.6f", x, y),
		p.Sprintf("%d x %d, %d px", view.Width(), view.Height(), view.PixelCount()),
		p.Sprintf("frame %d", frames),
	}
}

// Draw paints lines in a translucent box at the top-left corner of dst.
// Text that does not fit is clipped by dst's bounds.
func Draw(dst draw.Image, lines []string) {
	if len(lines) == 0 {
		return
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}

	origin := dst.Bounds().Min.Add(image.Pt(margin, margin))
	box := image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(width+2*padding, len(lines)*lineHeight+2*padding)),
	}
	draw.Draw(dst, box.Intersect(dst.Bounds()), backdrop, image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  textFg,
		Face: face,
	}
	for i, l := range lines {
		d.Dot = fixed.P(origin.X+padding, origin.Y+padding+ascent+i*lineHeight)
		d.DrawString(l)
	}
}
