package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestKeyCollectedOnceActive(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	key, err := factory.CreatePickup(e, math.Vec2{X: 7.5, Y: 5}, factory.PickupKey, 0)
	require.NoError(t, err)

	setNow(e, 0.2)
	UpdateCollisions(e)
	assert.True(t, key.Valid(), "still waiting for activation")
	assert.Equal(t, 0, components.Player.Get(player).NumKeys)

	setNow(e, 0.5)
	UpdateCollisions(e)
	assert.False(t, key.Valid())
	assert.Equal(t, 1, components.Player.Get(player).NumKeys)
}

func TestHealthPickupCapsAtMax(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	health := components.Health.Get(player)
	health.Current = cfg.Player.MaxHealth - 3

	first, err := factory.CreatePickup(e, math.Vec2{X: 3, Y: 3}, factory.PickupHealth, 0)
	require.NoError(t, err)
	assert.True(t, CollectPickup(e, player, first))
	assert.Equal(t, cfg.Player.MaxHealth-1, health.Current)

	second, err := factory.CreatePickup(e, math.Vec2{X: 3, Y: 3}, factory.PickupHealth, 0)
	require.NoError(t, err)
	assert.True(t, CollectPickup(e, player, second))
	assert.Equal(t, cfg.Player.MaxHealth, health.Current)
}

func TestGrapplerIsLeftAlone(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	grappler, err := factory.CreatePickup(e, math.Vec2{X: 3, Y: 3}, factory.PickupGrappler, 0)
	require.NoError(t, err)

	assert.False(t, CollectPickup(e, player, grappler))
	assert.True(t, grappler.Valid())
}

func TestDeadPlayerCollectsNothing(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	key, err := factory.CreatePickup(e, math.Vec2{X: 3, Y: 3}, factory.PickupKey, 0)
	require.NoError(t, err)

	components.Player.Get(player).Mode = cfg.Dead
	assert.False(t, CollectPickup(e, player, key))
	assert.True(t, key.Valid())
}
