package systems

import (
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// RoomPositioner tracks which room an entity is in and where it stands
// inside it. Only the player writes to it.
type RoomPositioner interface {
	GridSnapped(mult float64) math.Vec2
	RoomNum() gamemath.RoomIndex
	SetRoomNum(rm gamemath.RoomIndex)
	RoomPos() math.Vec2
	SetRoomPos(local math.Vec2)
	Door(i int) math.Vec2
	DoorAt(snapped math.Vec2) int
	InBounds(rm gamemath.RoomIndex) bool
}

// roomService binds the player's stored room and its collision object to the
// dungeon's room grid.
type roomService struct {
	grid   gamemath.RoomGrid
	player *components.PlayerData
	obj    *components.ObjectData
}

func newRoomService(grid gamemath.RoomGrid, player *components.PlayerData, obj *components.ObjectData) *roomService {
	return &roomService{grid: grid, player: player, obj: obj}
}

func (r *roomService) GridSnapped(mult float64) math.Vec2 {
	return r.grid.Snap(r.RoomPos(), mult)
}

func (r *roomService) RoomNum() gamemath.RoomIndex {
	return r.player.Room
}

func (r *roomService) SetRoomNum(rm gamemath.RoomIndex) {
	r.player.Room = rm
}

func (r *roomService) RoomPos() math.Vec2 {
	return gamemath.Sub(r.obj.Pos(), r.grid.Origin(r.player.Room))
}

func (r *roomService) SetRoomPos(local math.Vec2) {
	r.obj.MoveTo(r.grid.Compose(r.player.Room, local))
}

func (r *roomService) Door(i int) math.Vec2 {
	return r.grid.Doors[i]
}

func (r *roomService) DoorAt(snapped math.Vec2) int {
	return r.grid.DoorAt(snapped)
}

func (r *roomService) InBounds(rm gamemath.RoomIndex) bool {
	return r.grid.InBounds(rm)
}

// DetectRoomTransition moves the player into the neighboring room when it
// stands on a door cell while facing through it. It reports whether a
// transition started.
func DetectRoomTransition(ctx TickContext, p *components.PlayerData, rooms RoomPositioner) bool {
	if p.Mode == cfg.Dead {
		return false
	}

	door := rooms.DoorAt(rooms.GridSnapped(cfg.Room.GridMult))
	if door == gamemath.NoDirection || door != p.FaceDir {
		return false
	}

	next := gamemath.NeighborRoom(rooms.RoomNum(), door)
	if !rooms.InBounds(next) {
		return false
	}

	rooms.SetRoomNum(next)
	p.TransitionPos = rooms.Door(gamemath.Opposite(door))
	rooms.SetRoomPos(p.TransitionPos)
	p.Mode = cfg.Transition
	p.TransitionEndsAt = gamemath.OpenWindow(ctx.Now, cfg.Player.TransitionDelay)

	logging.Log.Infow("room transition",
		"door", door,
		"room_x", next.X,
		"room_y", next.Y,
		"at", ctx.Now,
	)
	return true
}

// UpdateRoomTransitions runs transition detection for the player. It reads
// the position the physics pass left behind last tick.
func UpdateRoomTransitions(ecs *ecs.ECS) {
	ctx := tickContext(ecs.World)
	rooms, p, ok := playerRooms(ecs)
	if !ok {
		return
	}
	DetectRoomTransition(ctx, p, rooms)
}
