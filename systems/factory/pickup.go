package factory

import (
	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Pickup kinds placed in dungeon maps.
const (
	PickupKey      = "key"
	PickupHealth   = "health"
	PickupGrappler = "grappler"
)

// CreatePickup drops a collectible at pos. It cannot be collected until
// the activation delay has passed since now.
func CreatePickup(ecs *ecs.ECS, pos math.Vec2, kind string, now float64) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, wrap("pickup", err)
	}

	pickup := archetypes.Pickup.Spawn(ecs)
	obj := newBody(pickup, pos.X, pos.Y, cfg.Pickup.Size, tags.ResolvPickup)
	space.Add(obj)

	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:     kind,
		ActiveAt: gamemath.OpenWindow(now, cfg.Pickup.ActivationDelay),
	})
	return pickup, nil
}
