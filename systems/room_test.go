package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestRoomTransitionThroughUpperDoor(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	p := components.Player.Get(player)
	rooms, _, ok := playerRooms(e)
	require.True(t, ok)

	require.Equal(t, gamemath.RoomIndex{X: 0, Y: 0}, p.Room)
	rooms.SetRoomPos(rooms.Door(gamemath.DirUp))
	p.FaceDir = gamemath.DirUp

	started := DetectRoomTransition(TickContext{Now: 2}, p, rooms)
	require.True(t, started)

	assert.Equal(t, gamemath.RoomIndex{X: 0, Y: 1}, p.Room)
	assert.Equal(t, rooms.Door(gamemath.DirDown), p.TransitionPos)
	assertVec(t, math.Vec2{X: 7.5, Y: 1}, rooms.RoomPos())
	assertVec(t, math.Vec2{X: 7.5, Y: 12}, pos(player))
	assert.Equal(t, cfg.Transition, p.Mode)
	assert.Equal(t, 2+cfg.Player.TransitionDelay, p.TransitionEndsAt.Until)
}

func TestRoomTransitionRejected(t *testing.T) {
	tests := []struct {
		name   string
		room   gamemath.RoomIndex
		local  math.Vec2
		facing int
	}{
		{"facing away from the door", gamemath.RoomIndex{}, math.Vec2{X: 7.5, Y: 9}, gamemath.DirLeft},
		{"not on a door", gamemath.RoomIndex{}, math.Vec2{X: 7.5, Y: 7}, gamemath.DirUp},
		{"neighbor above the grid", gamemath.RoomIndex{X: 0, Y: 1}, math.Vec2{X: 7.5, Y: 9}, gamemath.DirUp},
		{"neighbor left of the grid", gamemath.RoomIndex{}, math.Vec2{X: 1, Y: 5}, gamemath.DirLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestWorld(t, openDungeon())
			p := components.Player.Get(player)
			rooms, _, _ := playerRooms(e)

			rooms.SetRoomNum(tt.room)
			rooms.SetRoomPos(tt.local)
			p.FaceDir = tt.facing

			assert.False(t, DetectRoomTransition(TickContext{Now: 1}, p, rooms))
			assert.Equal(t, tt.room, p.Room)
			assert.NotEqual(t, cfg.Transition, p.Mode)
		})
	}
}

func TestRoomTransitionSnapsToGrid(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	p := components.Player.Get(player)
	rooms, _, _ := playerRooms(e)

	// 13.9 snaps to 14 on the half-tile grid, the right door's column.
	rooms.SetRoomPos(math.Vec2{X: 13.9, Y: 5.1})
	p.FaceDir = gamemath.DirRight

	require.True(t, DetectRoomTransition(TickContext{Now: 1}, p, rooms))
	assert.Equal(t, gamemath.RoomIndex{X: 1, Y: 0}, p.Room)
	assertVec(t, math.Vec2{X: 17, Y: 5}, pos(player))
}

// The transition mode ends on the first tick after it starts, while its
// delay is still running. This mirrors the controller's literal exit check.
func TestTransitionExitsOnFirstTick(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	p := components.Player.Get(player)
	rooms, _, _ := playerRooms(e)

	rooms.SetRoomPos(rooms.Door(gamemath.DirUp))
	p.FaceDir = gamemath.DirUp
	require.True(t, DetectRoomTransition(TickContext{Now: 2}, p, rooms))

	hold(player, gamemath.DirUp)
	stepPlayer(t, e, player, 2+1.0/60)

	assert.True(t, p.TransitionEndsAt.Open(2+1.0/60))
	assert.Equal(t, cfg.Move, p.Mode)
	assertVec(t, math.Vec2{X: 7.5, Y: 12}, pos(player))
	assert.Equal(t, math.Vec2{X: 0, Y: cfg.Player.Speed}, velocity(player))
}

func TestTransitionPinsPositionAndStops(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	p := components.Player.Get(player)
	rooms, _, _ := playerRooms(e)

	rooms.SetRoomPos(rooms.Door(gamemath.DirUp))
	p.FaceDir = gamemath.DirUp
	require.True(t, DetectRoomTransition(TickContext{Now: 2}, p, rooms))

	components.Object.Get(player).MoveTo(math.Vec2{X: 9, Y: 14})
	stepPlayer(t, e, player, 2+1.0/60)

	assertVec(t, math.Vec2{X: 7.5, Y: 12}, pos(player))
	assert.Equal(t, cfg.Idle, p.Mode)
	assert.Equal(t, math.Vec2{}, velocity(player))
}

func TestDeadPlayerNeverTransitions(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	p := components.Player.Get(player)
	rooms, _, _ := playerRooms(e)

	rooms.SetRoomPos(rooms.Door(gamemath.DirUp))
	p.FaceDir = gamemath.DirUp
	p.Mode = cfg.Dead

	assert.False(t, DetectRoomTransition(TickContext{Now: 1}, p, rooms))
	assert.Equal(t, gamemath.RoomIndex{}, p.Room)
}
