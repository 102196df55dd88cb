package factory

import (
	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centered on pos together with its sword.
// The collision space and the dungeon must already exist.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, wrap("player", err)
	}
	dungeon, err := dungeonOf(ecs)
	if err != nil {
		return nil, wrap("player", err)
	}

	player := archetypes.Player.Spawn(ecs)

	obj := newBody(player, pos.X, pos.Y, cfg.Player.CollisionSize, tags.ResolvPlayer)
	space.Add(obj)

	playerData := components.NewPlayerData()
	playerData.Room = dungeon.Grid.RoomNum(pos)
	components.Player.SetValue(player, playerData)

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	// Spawn invincibility lapses on the first tick.
	components.Invincible.SetValue(player, components.InvincibleData{On: true})

	anim := components.AnimationData{Base: cfg.Player.AnimationBase}
	anim.Play(cfg.ClipWalk, playerData.FaceDir, 0)
	components.Animation.SetValue(player, anim)

	components.Contacts.SetValue(player, components.ContactsData{
		Touching: map[donburi.Entity]bool{},
	})
	components.Tint.SetValue(player, components.TintData{Base: cfg.White, Current: cfg.White})

	CreateSword(ecs, player)

	return player, nil
}
