package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

// walledDungeon has a single wall tile at (10, 5), covering 9.5..10.5 on
// both axes.
func walledDungeon(spawnX, spawnY float64) *leveldata.Dungeon {
	d := openDungeon()
	d.PlayerSpawn = leveldata.Spawn{X: spawnX, Y: spawnY}
	d.Walls = []leveldata.Tile{{X: 10, Y: 5}}
	return d
}

func TestWalkingIntoWallStopsFlush(t *testing.T) {
	e, player := newTestWorld(t, walledDungeon(8, 5))

	hold(player, gamemath.DirRight)
	for i := 0; i < 40; i++ {
		runTick(e)
	}

	got := pos(player)
	assert.InDelta(t, 9.1, got.X, 1e-6)
	assert.InDelta(t, 5, got.Y, 1e-9)
	assert.True(t, components.Physics.Get(player).Blocked)
}

func TestBodySlidesAlongWall(t *testing.T) {
	e, player := newTestWorld(t, walledDungeon(9.1, 5))
	setNow(e, 1)

	components.Physics.Get(player).Velocity = math.Vec2{X: 6, Y: 6}
	UpdatePhysics(e)

	got := pos(player)
	assert.InDelta(t, 9.1, got.X, 1e-6, "blocked axis")
	assert.InDelta(t, 5.1, got.Y, 1e-9, "free axis")
	assert.True(t, components.Physics.Get(player).Blocked)
}

func TestBodyInsideWallCanLeave(t *testing.T) {
	e, player := newTestWorld(t, walledDungeon(10, 5.3))

	components.Physics.Get(player).Velocity = math.Vec2{Y: 6}
	UpdatePhysics(e)

	assert.InDelta(t, 5.4, pos(player).Y, 1e-9)
	assert.False(t, components.Physics.Get(player).Blocked)
}

func TestOpenFloorMovesFullDistance(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())

	components.Physics.Get(player).Velocity = math.Vec2{X: -3, Y: 0}
	UpdatePhysics(e)

	assertVec(t, math.Vec2{X: 7.45, Y: 5}, pos(player))
	assert.False(t, components.Physics.Get(player).Blocked)
}
