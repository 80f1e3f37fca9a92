package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cloudburst/game"
)

// PollInput forwards this frame's mouse and keyboard events to g.
func PollInput(g *game.Game) {
	mouse := rl.GetMousePosition()
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		g.PointerDown(mouse.X, mouse.Y)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		g.PointerUp()
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		g.PointerMove(mouse.X, mouse.Y)
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if r, ok := keyRune(key); ok {
			g.KeyPressed(r)
		}
	}
}

// keyRune maps raylib key codes to game commands.
func keyRune(key int32) (rune, bool) {
	switch key {
	case rl.KeySpace:
		return game.StepKey, true
	case rl.KeyR:
		return game.RestartKey, true
	}
	return 0, false
}
