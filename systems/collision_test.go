package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestEnemyContactHurtsOncePerTouch(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	spawnEnemy(t, e, "Spiker", math.Vec2{X: 8.2, Y: 5})
	vulnerable(player)
	setNow(e, 1)

	UpdateCollisions(e)
	require.True(t, player.HasComponent(components.DamageEvent))
	ev := *components.DamageEvent.Get(player)
	assert.Equal(t, 2, ev.Amount)
	assert.True(t, ev.Knockback)
	assertVec(t, math.Vec2{X: 8.2, Y: 5}, ev.SourcePos)

	UpdateCombat(e)
	assert.Equal(t, cfg.Player.MaxHealth-2, components.Health.Get(player).Current)
	assert.Equal(t, cfg.Knockback, components.Player.Get(player).Mode)
	assert.Equal(t, math.Vec2{X: -cfg.Player.KnockbackSpeed}, velocity(player))

	// Resting against the enemy raises nothing new, even once vulnerable.
	vulnerable(player)
	setNow(e, 1+1.0/60)
	UpdateCollisions(e)
	assert.False(t, player.HasComponent(components.DamageEvent))
}

func TestQueueDamageLastWriteWins(t *testing.T) {
	_, player := newTestWorld(t, openDungeon())

	QueueDamage(player, components.DamageEventData{Amount: 1})
	QueueDamage(player, components.DamageEventData{Amount: 3, Knockback: true})

	ev := components.DamageEvent.Get(player)
	assert.Equal(t, 3, ev.Amount)
	assert.True(t, ev.Knockback)
}

func TestCombatConsumesEvents(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	vulnerable(player)
	setNow(e, 1)

	QueueDamage(player, components.DamageEventData{Amount: 1})
	UpdateCombat(e)

	assert.False(t, player.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Player.MaxHealth-1, components.Health.Get(player).Current)
}
