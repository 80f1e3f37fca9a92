// Package renderer draws the game scene onto an abstract 2D surface.
package renderer

import "image/color"

// Surface is the drawing target. Coordinates are pixels with the origin at the
// top-left corner; colors carry their own alpha.
type Surface interface {
	Size() (w, h float32)
	Clear(c color.RGBA)
	FillCircle(x, y, r float32, c color.RGBA)
	FillEllipse(x, y, rx, ry float32, c color.RGBA)
	FillRect(x, y, w, h float32, c color.RGBA)
	Line(x1, y1, x2, y2, thick float32, c color.RGBA)
	Text(s string, x, y float32, size int32, c color.RGBA) // y is the baseline
}
