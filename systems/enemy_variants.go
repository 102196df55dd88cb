package systems

import (
	"math/rand"

	"github.com/automoto/delver/components"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Behavior names used in enemy type configs.
const (
	BehaviorSkeletos = "skeletos"
	BehaviorSpiker   = "spiker"
)

var enemyBehaviors = map[string]EnemyBehavior{
	BehaviorSkeletos: &Skeletos{},
	BehaviorSpiker:   Spiker{},
}

// BehaviorFor looks up a behavior by name. Unknown names get the stationary
// Spiker behavior.
func BehaviorFor(name string) EnemyBehavior {
	if b, ok := enemyBehaviors[name]; ok {
		return b
	}
	return Spiker{}
}

// Skeletos wanders: every so often it turns to a random facing and walks
// that way at its configured speed.
type Skeletos struct {
	Rand *rand.Rand // nil uses the global source
}

func (s *Skeletos) OnUpdate(ctx TickContext, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if enemy.NextDecisionAt.Reached(ctx.Now) {
		enemy.Facing = s.pick(4)
		enemy.NextDecisionAt = gamemath.OpenWindow(ctx.Now, enemy.TypeConfig.ThinkMax*s.roll())
	}
	enemyWalk(e, enemy.Facing)
	components.Physics.Get(e).Velocity = gamemath.Scale(gamemath.DirectionVector(enemy.Facing), enemy.TypeConfig.Speed)
}

func (s *Skeletos) OnDamage(ctx TickContext, e *donburi.Entry, ev components.DamageEventData) bool {
	return applyEnemyDamage(ctx, e, ev)
}

func (s *Skeletos) OnDestroy(ctx TickContext, e *donburi.Entry) {
	logging.Log.Debugw("skeletos crumbles", "facing", components.Enemy.Get(e).Facing)
}

func (s *Skeletos) pick(n int) int {
	if s.Rand != nil {
		return s.Rand.Intn(n)
	}
	return rand.Intn(n)
}

func (s *Skeletos) roll() float64 {
	if s.Rand != nil {
		return s.Rand.Float64()
	}
	return rand.Float64()
}

// Spiker is a stationary hazard. It only moves while knocked back.
type Spiker struct{}

func (Spiker) OnUpdate(ctx TickContext, e *donburi.Entry) {
	components.Physics.Get(e).Velocity = math.Vec2{}
	enemyWalk(e, components.Enemy.Get(e).Facing)
}

func (Spiker) OnDamage(ctx TickContext, e *donburi.Entry, ev components.DamageEventData) bool {
	return applyEnemyDamage(ctx, e, ev)
}

func (Spiker) OnDestroy(ctx TickContext, e *donburi.Entry) {
	logging.Log.Debugw("spiker shattered")
}
