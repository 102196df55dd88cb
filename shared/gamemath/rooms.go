package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// RoomIndex addresses a room on the dungeon grid.
type RoomIndex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomGrid converts world positions to rooms and room-local positions.
// World and room coordinates have +Y pointing up.
type RoomGrid struct {
	RoomW, RoomH float64
	GridMult     float64
	MaxX, MaxY   int

	// Door cells in room-local coordinates, ordered right, up, left, down.
	Doors [4]dmath.Vec2
}

// RoomNum returns the room containing a world position.
func (g RoomGrid) RoomNum(pos dmath.Vec2) RoomIndex {
	return RoomIndex{
		X: int(math.Floor(pos.X / g.RoomW)),
		Y: int(math.Floor(pos.Y / g.RoomH)),
	}
}

// Origin returns the world position of a room's local (0, 0).
func (g RoomGrid) Origin(rm RoomIndex) dmath.Vec2 {
	return dmath.Vec2{X: float64(rm.X) * g.RoomW, Y: float64(rm.Y) * g.RoomH}
}

// RoomPos returns the room-local position of a world position.
func (g RoomGrid) RoomPos(pos dmath.Vec2) dmath.Vec2 {
	return Sub(pos, g.Origin(g.RoomNum(pos)))
}

// Compose places a room-local position inside the given room.
func (g RoomGrid) Compose(rm RoomIndex, local dmath.Vec2) dmath.Vec2 {
	return Add(g.Origin(rm), local)
}

// Snap rounds a room-local position to multiples of mult. A non-positive
// mult uses the grid's own GridMult. Halves round to even.
func (g RoomGrid) Snap(local dmath.Vec2, mult float64) dmath.Vec2 {
	if mult <= 0 {
		mult = g.GridMult
	}
	return dmath.Vec2{
		X: math.RoundToEven(local.X/mult) * mult,
		Y: math.RoundToEven(local.Y/mult) * mult,
	}
}

// DoorAt returns the index of the door cell equal to a snapped room-local
// position, or NoDirection.
func (g RoomGrid) DoorAt(snapped dmath.Vec2) int {
	for i, d := range g.Doors {
		if snapped.X == d.X && snapped.Y == d.Y {
			return i
		}
	}
	return NoDirection
}

// NeighborRoom offsets rm one room along a door's axis.
func NeighborRoom(rm RoomIndex, door int) RoomIndex {
	switch door {
	case DirRight:
		rm.X++
	case DirUp:
		rm.Y++
	case DirLeft:
		rm.X--
	case DirDown:
		rm.Y--
	}
	return rm
}

// InBounds reports whether rm lies on the grid.
func (g RoomGrid) InBounds(rm RoomIndex) bool {
	return rm.X >= 0 && rm.X <= g.MaxX && rm.Y >= 0 && rm.Y <= g.MaxY
}
