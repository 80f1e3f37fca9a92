package systems

import "github.com/pthm-cable/cloudburst/config"

// Player is the cloud the user defends. It never moves on its own.
type Player struct {
	X, Y   float32
	Radius float32
	Stress float32 // [0,1], proximity of the nearest enemy
}

// NewPlayer places a player at its configured spawn point within b.
func NewPlayer(cfg config.PlayerConfig, b Bounds) Player {
	p := Player{Radius: float32(cfg.Radius)}
	p.Place(cfg, b)
	return p
}

// Place moves the player to its spawn point for the given bounds and clears stress.
func (p *Player) Place(cfg config.PlayerConfig, b Bounds) {
	p.X = b.Width * float32(cfg.XFraction)
	p.Y = b.Height * float32(cfg.YFraction)
	p.Stress = 0
}

// StressFor maps the edge-to-edge gap to the nearest enemy onto [0,1].
// Overlapping circles give 1, gaps of stressRange or more give 0.
func StressFor(gap, stressRange float32) float32 {
	if stressRange <= 0 {
		return 0
	}
	if gap < 0 {
		gap = 0
	}
	return clamp01((stressRange - gap) / stressRange)
}
