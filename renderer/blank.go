package renderer

import "image/color"

// BlankSurface is a fixed-size Surface that discards all drawing, for
// headless runs.
type BlankSurface struct {
	W, H float32
}

// Size returns the fixed size.
func (s *BlankSurface) Size() (float32, float32) { return s.W, s.H }

// Clear discards the fill.
func (s *BlankSurface) Clear(color.RGBA) {}

// FillCircle discards the shape.
func (s *BlankSurface) FillCircle(x, y, r float32, c color.RGBA) {}

// FillEllipse discards the shape.
func (s *BlankSurface) FillEllipse(x, y, rx, ry float32, c color.RGBA) {}

// FillRect discards the shape.
func (s *BlankSurface) FillRect(x, y, w, h float32, c color.RGBA) {}

// Line discards the line.
func (s *BlankSurface) Line(x1, y1, x2, y2, thick float32, c color.RGBA) {}

// Text discards the text.
func (s *BlankSurface) Text(text string, x, y float32, size int32, c color.RGBA) {}
