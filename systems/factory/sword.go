package factory

import (
	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSword attaches an inactive sword hitbox to owner. It stays out of the
// collision space until the sword system activates it.
func CreateSword(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	sword := archetypes.Sword.Spawn(ecs)

	obj := components.NewObject(0, 0, cfg.Player.SwordReach, cfg.Player.SwordWidth, tags.ResolvSword, tags.ResolvDamage)
	obj.Data = sword
	components.Object.SetValue(sword, components.ObjectData{Object: obj})

	components.Sword.SetValue(sword, components.SwordData{Owner: owner})
	components.DamageEffect.SetValue(sword, components.DamageEffectData{
		Damage:    cfg.Player.SwordDamage,
		Knockback: cfg.Player.SwordKnockback,
	})
	return sword
}
