package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/config"
	"github.com/pthm-cable/cloudburst/renderer"
	"github.com/pthm-cable/cloudburst/systems"
)

// Mode is the game state machine state.
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeGameOver
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	if m == ModeGameOver {
		return "game_over"
	}
	return "playing"
}

// Reticle is the aim point held by the pointer.
type Reticle struct {
	X, Y   float32
	Active bool
}

// GameState is everything the simulation mutates.
type GameState struct {
	Mode     Mode
	Player   systems.Player
	Enemies  *systems.EnemyPool
	Droplets *systems.DropletPool
	Steam    *systems.SteamPool
	Tufts    *systems.TuftPool
	Reticle  Reticle
	Score    int
	Bounds   systems.Bounds

	InputEnabled bool
	Terminal     bool // Set when an enemy reached the player this frame
}

// NewGameState creates empty pools in world and places the player.
func NewGameState(world *ecs.World, cfg *config.Config, b systems.Bounds) GameState {
	return GameState{
		Mode:     ModePlaying,
		Player:   systems.NewPlayer(cfg.Player, b),
		Enemies:  systems.NewEnemyPool(world),
		Droplets: systems.NewDropletPool(world),
		Steam:    systems.NewSteamPool(world),
		Tufts:    systems.NewTuftPool(world),
		Bounds:   b,
	}
}

// scene returns the renderer's view of the state.
func (s *GameState) scene() renderer.Scene {
	return renderer.Scene{
		Player:   &s.Player,
		Tufts:    s.Tufts,
		Enemies:  s.Enemies,
		Droplets: s.Droplets,
		Steam:    s.Steam,
		Aim:      renderer.Aim{X: s.Reticle.X, Y: s.Reticle.Y, Active: s.Reticle.Active},
	}
}
