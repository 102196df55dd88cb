package systems

import (
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyBehavior is what makes one kind of enemy differ from another. The
// shared controller in StepEnemy always runs first.
type EnemyBehavior interface {
	// OnUpdate runs after StepEnemy on ticks that are not spent in
	// knockback.
	OnUpdate(ctx TickContext, e *donburi.Entry)
	// OnDamage applies a hit and reports whether the enemy must be
	// destroyed.
	OnDamage(ctx TickContext, e *donburi.Entry, ev components.DamageEventData) bool
	// OnDestroy runs just before the entity leaves the world.
	OnDestroy(ctx TickContext, e *donburi.Entry)
}

func UpdateEnemies(ecs *ecs.ECS) {
	ctx := tickContext(ecs.World)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if StepEnemy(ctx, e) {
			return
		}
		BehaviorFor(components.Enemy.Get(e).TypeConfig.Behavior).OnUpdate(ctx, e)
	})
}

// StepEnemy is the controller shared by every enemy. It reports true when
// the enemy is being knocked back and the rest of the tick must be skipped.
func StepEnemy(ctx TickContext, e *donburi.Entry) bool {
	enemy := components.Enemy.Get(e)
	inv := components.Invincible.Get(e)
	anim := components.Animation.Get(e)

	invincible := decayInvincibility(ctx.Now, inv)
	tintFollows(components.Tint.Get(e), invincible)

	if enemy.Knockback {
		kb := components.Knockback.Get(e)
		components.Physics.Get(e).Velocity = kb.Velocity
		if kb.Until.Open(ctx.Now) {
			return true
		}
	}

	anim.SetSpeed(1)
	enemy.Knockback = false
	return false
}

// applyEnemyDamage is the hit response every variant starts from. Knockback
// pushes away from the root of the attacker rather than the touching
// collider, so a sword pushes enemies away from the player holding it.
func applyEnemyDamage(ctx TickContext, e *donburi.Entry, ev components.DamageEventData) bool {
	inv := components.Invincible.Get(e)
	if inv.On {
		return false
	}

	enemy := components.Enemy.Get(e)
	health := components.Health.Get(e)
	health.Current -= ev.Amount
	if health.Current <= 0 {
		return true
	}

	grantInvincibility(ctx.Now, enemy.TypeConfig.InvincibleDuration, inv)

	if ev.Knockback {
		kb := components.Knockback.Get(e)
		pos := components.Object.Get(e).Pos()
		dir := gamemath.SnapToAxis(gamemath.Sub(pos, ev.SourceRootPos))
		kb.Velocity = gamemath.Scale(dir, enemy.TypeConfig.KnockbackSpeed)
		kb.Until = gamemath.OpenWindow(ctx.Now, enemy.TypeConfig.KnockbackDuration)
		enemy.Knockback = true
		enemy.Facing = gamemath.DirectionIndex(dir)
		components.Physics.Get(e).Velocity = kb.Velocity
		components.Animation.Get(e).SetSpeed(0)
	}
	return false
}

// DamageEnemy delivers a hit to an enemy and destroys it when its health
// runs out. It reports whether the enemy was destroyed.
func DamageEnemy(ecs *ecs.ECS, ctx TickContext, e *donburi.Entry, ev components.DamageEventData) bool {
	behavior := BehaviorFor(components.Enemy.Get(e).TypeConfig.Behavior)
	if !behavior.OnDamage(ctx, e, ev) {
		return false
	}
	DestroyEnemy(ecs, ctx, e)
	return true
}

// DestroyEnemy removes an enemy from the collision space and the world.
func DestroyEnemy(ecs *ecs.ECS, ctx TickContext, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	BehaviorFor(enemy.TypeConfig.Behavior).OnDestroy(ctx, e)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	logging.Log.Infow("enemy destroyed", "type", enemy.TypeName, "at", ctx.Now)
	ecs.World.Remove(e.Entity())
}

// enemyWalk points the enemy's animation at its walk clip.
func enemyWalk(e *donburi.Entry, facing int) {
	components.Animation.Get(e).Play(cfg.ClipWalk, facing, 1)
}
