package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cloudburst/game"
)

// Action is what the player chose on the game-over screen.
type Action int

const (
	ActionNone Action = iota
	ActionPlayAgain
	ActionGiveUp
)

// Overlay draws the game-over panel with its two buttons.
type Overlay struct {
	renderer *Renderer
}

// NewOverlay creates a game-over overlay.
func NewOverlay() *Overlay {
	return &Overlay{renderer: NewRenderer()}
}

// overlayLayout centres the panel in a w x h screen and places the buttons
// side by side along its bottom edge.
func overlayLayout(t Theme, w, h float32) (panel, playAgain, giveUp rl.Rectangle) {
	panel = rl.Rectangle{
		X:      (w - t.OverlayWidth) / 2,
		Y:      (h - t.OverlayHeight) / 2,
		Width:  t.OverlayWidth,
		Height: t.OverlayHeight,
	}
	pad := float32(t.Padding)
	by := panel.Y + panel.Height - pad - t.ButtonHeight
	gap := panel.Width - 2*pad - 2*t.ButtonWidth

	playAgain = rl.Rectangle{X: panel.X + pad, Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}
	giveUp = rl.Rectangle{X: playAgain.X + t.ButtonWidth + gap, Y: by, Width: t.ButtonWidth, Height: t.ButtonHeight}
	return panel, playAgain, giveUp
}

// Draw shows the overlay when g is over and returns the button pressed.
func (o *Overlay) Draw(g *game.Game) Action {
	if g.Mode() != game.ModeGameOver {
		return ActionNone
	}

	r := o.renderer
	t := r.Theme
	panel, playAgain, giveUp := overlayLayout(t, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	r.DrawPanel(int32(panel.X), int32(panel.Y), int32(panel.Width), int32(panel.Height))
	cx := int32(panel.X + panel.Width/2)
	r.DrawCenteredText("Game over", cx, int32(panel.Y)+t.Padding, t.TitleFontSize, t.TitleColor)
	r.DrawCenteredText(fmt.Sprintf("Score: %d", g.Score()), cx, int32(panel.Y)+t.Padding+t.TitleFontSize+8, 16, t.ValueColor)

	again := gui.Button(playAgain, "Play again")
	quit := gui.Button(giveUp, "Give up")
	switch {
	case again:
		return ActionPlayAgain
	case quit:
		return ActionGiveUp
	}
	return ActionNone
}
