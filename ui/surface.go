package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSurface implements renderer.Surface on the current raylib window.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct{}

// Size returns the window size.
func (RaylibSurface) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Clear fills the whole window with c.
func (RaylibSurface) Clear(c color.RGBA) {
	rl.ClearBackground(rl.Color(c))
}

// FillCircle draws a filled circle.
func (RaylibSurface) FillCircle(x, y, r float32, c color.RGBA) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, r, rl.Color(c))
}

// FillEllipse draws a filled axis-aligned ellipse.
func (RaylibSurface) FillEllipse(x, y, rx, ry float32, c color.RGBA) {
	rl.DrawEllipse(int32(x), int32(y), rx, ry, rl.Color(c))
}

// FillRect draws a filled rectangle.
func (RaylibSurface) FillRect(x, y, w, h float32, c color.RGBA) {
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, rl.Color(c))
}

// Line draws a line thick pixels wide.
func (RaylibSurface) Line(x1, y1, x2, y2, thick float32, c color.RGBA) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, thick, rl.Color(c))
}

// Text draws with the baseline at y, matching canvas fillText.
func (RaylibSurface) Text(text string, x, y float32, size int32, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y)-size, size, rl.Color(c))
}
