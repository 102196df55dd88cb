package systems

import (
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollectPickup hands a pickup's reward to the player and removes it from the
// dungeon. Kinds with no effect stay where they are.
func CollectPickup(ecs *ecs.ECS, playerEntry, pickupEntry *donburi.Entry) bool {
	pickup := components.Pickup.Get(pickupEntry)
	p := components.Player.Get(playerEntry)
	if p.Mode == cfg.Dead {
		return false
	}

	switch pickup.Kind {
	case factory.PickupKey:
		giveKey(p)
	case factory.PickupHealth:
		components.Health.Get(playerEntry).Restore(cfg.Pickup.HealthRestore)
	default:
		return false
	}

	logging.Log.Infow("pickup collected", "kind", pickup.Kind, "keys", p.NumKeys)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(pickupEntry).Object)
	}
	ecs.World.Remove(pickupEntry.Entity())
	return true
}

func giveKey(k components.KeyMaster) {
	k.SetKeyCount(k.KeyCount() + 1)
}
