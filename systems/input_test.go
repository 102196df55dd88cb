package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSnapshotInputAttackIsEdgeTriggered(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveDown] = true
	input.Current[cfg.ActionAttack] = true

	snap := SnapshotInput(&input)
	assert.Equal(t, [4]bool{false, false, true, true}, snap.Dir)
	assert.True(t, snap.AttackPressed)

	input.Previous = input.Current
	snap = SnapshotInput(&input)
	assert.True(t, snap.Dir[gamemath.DirLeft], "held directions stay held")
	assert.False(t, snap.AttackPressed, "holding attack does not repeat it")
}

func TestApplyInputFillsPlayerAndHost(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveUp] = true
	input.Current[cfg.ActionSave] = true
	applyInput(e, input)

	assert.True(t, components.InputSnapshot.Get(player).Dir[gamemath.DirUp])

	hostEntry, ok := components.HostInput.First(e.World)
	require.True(t, ok)
	host := components.HostInput.Get(hostEntry)
	assert.True(t, host.Save)
	assert.False(t, host.Load)
	assert.False(t, host.Quit)
}

func TestGetOrCreateInputSpawnsOnce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	first := getOrCreateInput(e)
	second := getOrCreateInput(e)
	assert.Same(t, first, second)

	n := 0
	components.Input.Each(e.World, func(*donburi.Entry) { n++ })
	assert.Equal(t, 1, n)

	_, ok := components.Clock.First(e.World)
	assert.False(t, ok, "menus get no simulation clock")
	_, ok = components.HostInput.First(e.World)
	assert.True(t, ok)
}

func TestHeldAttackIgnoredAfterPriming(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())

	// Select on the game over screen is still down when the dungeon starts.
	input := getOrCreateInput(e)
	input.Current[cfg.ActionAttack] = true
	holdCurrent(input)
	applyInput(e, input)
	assert.False(t, components.InputSnapshot.Get(player).AttackPressed)

	input.Current[cfg.ActionAttack] = false
	holdCurrent(input)
	input.Current[cfg.ActionAttack] = true
	applyInput(e, input)
	assert.True(t, components.InputSnapshot.Get(player).AttackPressed, "a fresh press still attacks")
}
