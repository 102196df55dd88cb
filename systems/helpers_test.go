package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/leveldata"
	"github.com/automoto/delver/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// openDungeon is a 2x2 room dungeon with no walls, the player spawning in
// the middle of the bottom-left room.
func openDungeon() *leveldata.Dungeon {
	return &leveldata.Dungeon{
		Name:        "test",
		Width:       32,
		Height:      22,
		PlayerSpawn: leveldata.Spawn{X: 7.5, Y: 5},
	}
}

// newTestWorld builds a populated world and returns it with the player.
func newTestWorld(t *testing.T, level *leveldata.Dungeon) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	player, err := factory.PopulateDungeon(e, level)
	require.NoError(t, err)
	return e, player
}

func setNow(e *ecs.ECS, now float64) TickContext {
	clockEntry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(clockEntry)
	clock.Now = now
	return TickContext{Now: now, Delta: clock.Delta}
}

// vulnerable clears the spawn invincibility so hits land straight away.
func vulnerable(e *donburi.Entry) {
	components.Invincible.SetValue(e, components.InvincibleData{})
}

func hold(e *donburi.Entry, dirs ...int) {
	var snap components.InputSnapshotData
	for _, d := range dirs {
		snap.Dir[d] = true
	}
	components.InputSnapshot.SetValue(e, snap)
}

func pressAttack(e *donburi.Entry) {
	components.InputSnapshot.SetValue(e, components.InputSnapshotData{AttackPressed: true})
}

func release(e *donburi.Entry) {
	components.InputSnapshot.SetValue(e, components.InputSnapshotData{})
}

func stepPlayer(t *testing.T, e *ecs.ECS, player *donburi.Entry, now float64) {
	t.Helper()
	ctx := setNow(e, now)
	rooms, _, ok := playerRooms(e)
	require.True(t, ok)
	StepPlayer(ctx, player, rooms)
}

func velocity(e *donburi.Entry) math.Vec2 {
	return components.Physics.Get(e).Velocity
}

func pos(e *donburi.Entry) math.Vec2 {
	return components.Object.Get(e).Pos()
}

// runTick advances a world through every simulation system, without polling
// devices.
func runTick(e *ecs.ECS) {
	UpdateClock(e)
	UpdatePlayer(e)
	UpdateEnemies(e)
	UpdateRoomTransitions(e)
	UpdateSword(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateCombat(e)
	UpdateCamera(e)
	UpdateAnimations(e)
}

// assertVec compares positions that went through the collision space.
func assertVec(t *testing.T, want, got math.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}
