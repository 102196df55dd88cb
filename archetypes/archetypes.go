package archetypes

import (
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order is handled by the renderers.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.InputSnapshot,
		components.Object,
		components.Health,
		components.Invincible,
		components.Knockback,
		components.Animation,
		components.Physics,
		components.Contacts,
		components.Tint,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Invincible,
		components.Knockback,
		components.Animation,
		components.Physics,
		components.Contacts,
		components.DamageEffect,
		components.Tint,
	)
	Sword = newArchetype(
		tags.Sword,
		components.Sword,
		components.Object,
		components.DamageEffect,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Dungeon = newArchetype(
		components.Dungeon,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
		components.HostInput,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
