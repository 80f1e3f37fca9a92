package renderer

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scene colors.
var (
	Sky         = color.RGBA{93, 215, 237, 255}
	TorchHandle = color.RGBA{165, 42, 42, 255}
	TorchFlame  = color.RGBA{255, 165, 0, 255}
	TorchCore   = color.RGBA{255, 255, 0, 255}
	Cloud       = color.RGBA{255, 255, 255, 255}
	Face        = color.RGBA{40, 40, 60, 255}
	HUDText     = color.RGBA{0, 0, 0, 255}
)

// DropletColor returns the fully saturated, mid-lightness color for a hue in degrees.
func DropletColor(hue float32) color.RGBA {
	r, g, b := colorful.Hsl(float64(hue), 1, 0.5).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// withOpacity returns c with its alpha scaled by opacity in [0,1].
func withOpacity(c color.RGBA, opacity float32) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float32(c.A)*opacity + 0.5)
	return c
}
