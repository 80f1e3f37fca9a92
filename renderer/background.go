package renderer

import "image/color"

// BackgroundRenderer fills the surface with a flat sky color.
type BackgroundRenderer struct {
	color color.RGBA
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(c color.RGBA) *BackgroundRenderer {
	return &BackgroundRenderer{color: c}
}

// Draw clears the surface to the background color.
func (b *BackgroundRenderer) Draw(s Surface) {
	s.Clear(b.color)
}
