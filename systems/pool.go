package systems

import "github.com/mlange-42/ark/ecs"

// removeEntities deletes entities collected during a query.
// Must be called after the query has finished; the world is locked while iterating.
func removeEntities(world *ecs.World, entities []ecs.Entity) {
	for _, e := range entities {
		world.RemoveEntity(e)
	}
}
