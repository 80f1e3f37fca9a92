package systems

import (
	"github.com/pthm-cable/cloudburst/config"
)

// Collides reports whether two circles overlap. Touching circles do not collide.
func Collides(x1, y1, r1, x2, y2, r2 float32) bool {
	sum := r1 + r2
	return distanceSq(x1, y1, x2, y2) < sum*sum
}

// Hit records where a droplet struck an enemy.
type Hit struct {
	X, Y   float32
	Serial uint32 // Enemy serial
	Puffs  int    // Steam released
}

// CollideDroplets resolves droplet/enemy hits. Each live droplet damages at
// most the first enemy it overlaps and is then marked spent. Steam bursts for
// all hits are released after both queries close.
func CollideDroplets(droplets *DropletPool, enemies *EnemyPool, steam *SteamPool, rng RNG, enemyCfg config.EnemyConfig, steamCfg config.SteamConfig) []Hit {
	shrink := float32(enemyCfg.HitShrink)
	var hits []Hit

	dq := droplets.filter.Query()
	for dq.Next() {
		dpos, _, dbody, drop := dq.Get()
		if drop.Spent {
			continue
		}

		eq := enemies.filter.Query()
		for eq.Next() {
			epos, _, ebody, enemy := eq.Get()
			if !Collides(dpos.X, dpos.Y, dbody.Radius, epos.X, epos.Y, ebody.Radius) {
				continue
			}
			ebody.Radius -= shrink
			drop.Spent = true
			hits = append(hits, Hit{X: dpos.X, Y: dpos.Y, Serial: enemy.Serial})
			eq.Close()
			break
		}
	}

	for i := range hits {
		hits[i].Puffs = steam.Burst(rng, steamCfg, hits[i].X, hits[i].Y)
	}
	return hits
}

// CheckPlayer tests the player against every enemy and updates its stress from
// the nearest one. Returns true if any enemy overlaps the player.
func CheckPlayer(player *Player, enemies *EnemyPool, stressRange float32) bool {
	collided := false
	found := false
	var nearest float32

	query := enemies.filter.Query()
	for query.Next() {
		pos, _, body, _ := query.Get()
		if Collides(player.X, player.Y, player.Radius, pos.X, pos.Y, body.Radius) {
			collided = true
		}
		gap := distance(player.X, player.Y, pos.X, pos.Y) - (player.Radius + body.Radius)
		if !found || gap < nearest {
			nearest = gap
			found = true
		}
	}

	player.Stress = 0
	if found {
		player.Stress = StressFor(nearest, stressRange)
	}
	return collided
}
