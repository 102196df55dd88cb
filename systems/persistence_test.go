package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/systems/factory"
	"github.com/automoto/delver/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// memStore keeps save slots in memory. Missing items load as nil, like gdata.
type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func enemiesByType(e *ecs.ECS) map[string]*donburi.Entry {
	out := map[string]*donburi.Entry{}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		out[components.Enemy.Get(entry).TypeName] = entry
	})
	return out
}

func TestLoadGameEmptySlot(t *testing.T) {
	e, _ := newTestWorld(t, openDungeon())
	assert.ErrorIs(t, LoadGame(e, memStore{}), ErrNoSave)
}

func TestSaveAndLoadNeedStore(t *testing.T) {
	e, _ := newTestWorld(t, openDungeon())
	assert.Error(t, SaveGame(e, nil))
	assert.Error(t, LoadGame(e, nil))
}

func TestSaveLoadResumesMidKnockback(t *testing.T) {
	saved, player := newTestWorld(t, openDungeon())
	spawnEnemy(t, saved, "Spiker", math.Vec2{X: 3, Y: 3})
	skel := spawnEnemy(t, saved, "Skeletos", math.Vec2{X: 12, Y: 8})
	// Far-off decision keeps the wander deterministic.
	skelData := components.Enemy.Get(skel)
	skelData.Facing = 2
	skelData.NextDecisionAt.Until = 100
	_, err := factory.CreatePickup(saved, math.Vec2{X: 3, Y: 8}, factory.PickupKey, 0)
	require.NoError(t, err)

	setNow(saved, 1)
	vulnerable(player)
	components.Player.Get(player).NumKeys = 2
	require.True(t, ApplyPlayerDamage(TickContext{Now: 1}, player, components.DamageEventData{
		Amount:    1,
		Knockback: true,
		SourcePos: math.Vec2{X: 8.5, Y: 5},
	}))

	store := memStore{}
	require.NoError(t, SaveGame(saved, store))

	loaded, loadedPlayer := newTestWorld(t, openDungeon())
	require.NoError(t, LoadGame(loaded, store))

	lp := components.Player.Get(loadedPlayer)
	assert.Equal(t, cfg.Knockback, lp.Mode)
	assert.Equal(t, 2, lp.NumKeys)
	assert.Equal(t, cfg.Player.MaxHealth-1, components.Health.Get(loadedPlayer).Current)
	assert.Equal(t, components.Knockback.Get(player).Until, components.Knockback.Get(loadedPlayer).Until)
	assert.Len(t, enemiesByType(loaded), 2)

	n := 0
	tags.Pickup.Each(loaded.World, func(*donburi.Entry) { n++ })
	assert.Equal(t, 1, n)

	for tick := 0; tick < 30; tick++ {
		runTick(saved)
		runTick(loaded)

		assertVec(t, pos(player), pos(loadedPlayer))
		assert.Equal(t, components.Player.Get(player).Mode, lp.Mode, "tick %d", tick)
		assert.Equal(t, velocity(player), velocity(loadedPlayer), "tick %d", tick)

		want, got := enemiesByType(saved), enemiesByType(loaded)
		for name, e := range want {
			require.Contains(t, got, name)
			assertVec(t, pos(e), pos(got[name]))
			assert.Equal(t, components.Health.Get(e).Current, components.Health.Get(got[name]).Current)
		}
	}
	assert.Equal(t, tickContext(saved.World), tickContext(loaded.World))
}

func TestLoadRestoresDeath(t *testing.T) {
	saved, player := newTestWorld(t, openDungeon())
	setNow(saved, 2)
	vulnerable(player)
	components.Health.Get(player).Current = 1
	ApplyPlayerDamage(TickContext{Now: 2}, player, components.DamageEventData{Amount: 1})
	require.True(t, player.HasComponent(components.Death))

	store := memStore{}
	require.NoError(t, SaveGame(saved, store))

	loaded, loadedPlayer := newTestWorld(t, openDungeon())
	require.NoError(t, LoadGame(loaded, store))

	require.True(t, loadedPlayer.HasComponent(components.Death))
	assert.Equal(t, 2.0, components.Death.Get(loadedPlayer).At)
	assert.Equal(t, cfg.Dead, components.Player.Get(loadedPlayer).Mode)
}

func TestLoadClearsDeathFromLiveSave(t *testing.T) {
	saved, _ := newTestWorld(t, openDungeon())
	store := memStore{}
	require.NoError(t, SaveGame(saved, store))

	loaded, loadedPlayer := newTestWorld(t, openDungeon())
	donburi.Add(loadedPlayer, components.Death, &components.DeathData{At: 1})
	require.NoError(t, LoadGame(loaded, store))

	assert.False(t, loadedPlayer.HasComponent(components.Death))
}
