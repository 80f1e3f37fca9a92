package renderer

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/cloudburst/systems"
)

// Aim is the reticle as seen by the renderer.
type Aim struct {
	X, Y   float32
	Active bool
}

// Scene is everything drawn in one frame.
type Scene struct {
	Player   *systems.Player
	Tufts    TuftSource
	Enemies  EnemySource
	Droplets DropletSource
	Steam    SteamSource
	Aim      Aim
}

// SceneRenderer draws complete frames.
type SceneRenderer struct {
	background *BackgroundRenderer
	particles  *ParticleRenderer
	player     *PlayerRenderer

	aimColor color.RGBA
}

// NewSceneRenderer creates a renderer with the default palette.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{
		background: NewBackgroundRenderer(Sky),
		particles:  NewParticleRenderer(),
		player:     NewPlayerRenderer(),
		aimColor:   withOpacity(Cloud, 0.6),
	}
}

// Draw renders the scene back to front: background, enemies, droplets, steam,
// player. Enemies pass under the player.
func (r *SceneRenderer) Draw(s Surface, sc Scene) {
	r.background.Draw(s)
	if sc.Enemies != nil {
		r.particles.DrawEnemies(s, sc.Enemies)
	}
	if sc.Droplets != nil {
		r.particles.DrawDroplets(s, sc.Droplets)
	}
	if sc.Steam != nil {
		r.particles.DrawSteam(s, sc.Steam)
	}
	if sc.Player != nil {
		r.player.Draw(s, sc.Player, sc.Tufts)
		if sc.Aim.Active {
			r.drawAim(s, sc.Player, sc.Aim)
		}
	}
}

func (r *SceneRenderer) drawAim(s Surface, p *systems.Player, a Aim) {
	s.Line(p.X, p.Y, a.X, a.Y, 1, r.aimColor)
	s.FillCircle(a.X, a.Y, 4, r.aimColor)
}

// DrawHUD renders the score text in the top-left corner.
func (r *SceneRenderer) DrawHUD(s Surface, score int) {
	s.Text(fmt.Sprintf("Score: %d", score), 10, 20, 16, HUDText)
}
