package systems

import (
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat consumes the damage events raised this tick. Each entity
// handles at most one; events are removed once processed.
func UpdateCombat(ecs *ecs.ECS) {
	ctx := tickContext(ecs.World)

	var pending []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		pending = append(pending, e)
	}

	for _, e := range pending {
		if !e.Valid() {
			continue
		}
		ev := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		switch {
		case e.HasComponent(tags.Player):
			ApplyPlayerDamage(ctx, e, ev)
		case e.HasComponent(tags.Enemy):
			DamageEnemy(ecs, ctx, e, ev)
		}
	}
}
