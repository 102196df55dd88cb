package factory

import (
	"fmt"

	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of a configured type centered on pos.
func CreateEnemy(ecs *ecs.ECS, pos math.Vec2, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		return nil, fmt.Errorf("create enemy: unknown type %q", enemyTypeName)
	}
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, wrap("enemy", err)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newBody(enemy, pos.X, pos.Y, enemyType.CollisionSize, tags.ResolvEnemy, tags.ResolvDamage)
	space.Add(obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: enemyType,
		Facing:     gamemath.DirDown,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.MaxHealth,
		Max:     enemyType.MaxHealth,
	})
	components.DamageEffect.SetValue(enemy, components.DamageEffectData{
		Damage:    enemyType.TouchDamage,
		Knockback: enemyType.TouchKnockback,
	})

	anim := components.AnimationData{Base: enemyTypeName}
	anim.Play(cfg.ClipWalk, gamemath.DirDown, 1)
	components.Animation.SetValue(enemy, anim)

	components.Contacts.SetValue(enemy, components.ContactsData{
		Touching: map[donburi.Entity]bool{},
	})
	components.Tint.SetValue(enemy, components.TintData{
		Base:    enemyType.TintColor,
		Current: enemyType.TintColor,
	})

	return enemy, nil
}
