package game

// render draws the scene and the score.
func (g *Game) render() {
	g.scene.Draw(g.surface, g.state.scene())
	g.scene.DrawHUD(g.surface, g.state.Score)
}

// Redraw draws the current state without advancing it. Hosts that clear the
// screen every display frame call this while no frame is scheduled.
func (g *Game) Redraw() {
	g.render()
}
