package game

import "github.com/pthm-cable/cloudburst/systems"

// PointerDown starts aiming at (x, y).
func (g *Game) PointerDown(x, y float32) {
	if !g.state.InputEnabled {
		return
	}
	g.state.Reticle = Reticle{X: x, Y: y, Active: true}
}

// PointerMove moves the reticle while aiming.
func (g *Game) PointerMove(x, y float32) {
	if !g.state.InputEnabled || !g.state.Reticle.Active {
		return
	}
	g.state.Reticle.X = x
	g.state.Reticle.Y = y
}

// PointerUp stops aiming.
func (g *Game) PointerUp() {
	if !g.state.InputEnabled {
		return
	}
	g.state.Reticle = Reticle{}
}

// KeyPressed handles keyboard commands.
func (g *Game) KeyPressed(key rune) {
	switch {
	case key == StepKey && g.opts.Debug:
		g.Step()
	case key == RestartKey && g.state.Mode == ModeGameOver:
		g.Restart()
	}
}

// Resize updates the surface bounds and re-centres the player.
func (g *Game) Resize(w, h float32) {
	g.state.Bounds = systems.Bounds{Width: w, Height: h}
	g.state.Player.Place(g.cfg.Player, g.state.Bounds)
}
