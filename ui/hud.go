package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cloudburst/game"
)

// DebugData holds what the debug panel shows.
type DebugData struct {
	Mode     string
	Frame    int32
	Enemies  int
	Droplets int
	Steam    int
	Stress   float32
	FPS      int32
}

// NewDebugData samples g for the debug panel.
func NewDebugData(g *game.Game, fps int32) DebugData {
	s := g.State()
	return DebugData{
		Mode:     g.Mode().String(),
		Frame:    g.Frames(),
		Enemies:  s.Enemies.Len(),
		Droplets: s.Droplets.Len(),
		Steam:    s.Steam.Len(),
		Stress:   s.Player.Stress,
		FPS:      fps,
	}
}

// DebugPanel shows simulation counters while single-stepping.
type DebugPanel struct {
	renderer *Renderer
	width    int32
}

// NewDebugPanel creates a debug panel of the given width.
func NewDebugPanel(width int32) *DebugPanel {
	return &DebugPanel{renderer: NewRenderer(), width: width}
}

// Draw renders the panel in the top-right corner.
func (p *DebugPanel) Draw(data DebugData) {
	r := p.renderer
	pad := r.Theme.Padding
	height := 7*r.Theme.LineHeight + 2 + 2*pad
	x := int32(rl.GetScreenWidth()) - p.width - pad
	y := pad

	r.DrawPanel(x, y, p.width, height)
	x += pad
	y += pad

	y = r.DrawLabelValue(x, y, "Mode", data.Mode)
	y = r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%d", data.Frame))
	y = r.DrawLabelValue(x, y, "Enemies", fmt.Sprintf("%d", data.Enemies))
	y = r.DrawLabelValue(x, y, "Droplets", fmt.Sprintf("%d", data.Droplets))
	y = r.DrawLabelValue(x, y, "Steam", fmt.Sprintf("%d", data.Steam))
	y = r.DrawBar(x, y, "Stress", data.Stress, p.width-2*pad)
	r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
}

// DrawControls renders the key legend at the bottom of the screen.
func DrawControls(debug bool) {
	text := "Hold left mouse to spray | F11: fullscreen"
	if debug {
		text += " | Space: step"
	}
	rl.DrawText(text, 10, int32(rl.GetScreenHeight())-25, 14, rl.DarkGray)
}
