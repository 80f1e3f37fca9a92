// Package ui holds the raylib side of the game: the drawing surface, input
// polling, the debug panel and the game-over overlay.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	TitleColor    rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFillLow    rl.Color
	BarFillMedium rl.Color
	BarFillHigh   rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	BarHeight     int32
	FontSize      int32
	TitleFontSize int32
	ButtonWidth   float32
	ButtonHeight  float32
	OverlayWidth  float32
	OverlayHeight float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		TitleColor:    rl.White,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.LightGray,
		BarBg:         rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFillLow:    rl.Color{R: 100, G: 200, B: 100, A: 255},
		BarFillMedium: rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHigh:   rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:       10,
		LineHeight:    16,
		LabelWidth:    70,
		BarHeight:     12,
		FontSize:      12,
		TitleFontSize: 30,
		ButtonWidth:   120,
		ButtonHeight:  30,
		OverlayWidth:  300,
		OverlayHeight: 150,
	}
}
