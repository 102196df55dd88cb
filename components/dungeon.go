package components

import (
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/shared/leveldata"
	"github.com/yohamta/donburi"
)

type DungeonData struct {
	Level *leveldata.Dungeon
	Grid  gamemath.RoomGrid
}

var Dungeon = donburi.NewComponentType[DungeonData]()

// PickupData is a collectible lying in the dungeon. Its collider ignores the
// player until ActiveAt is reached.
type PickupData struct {
	Kind     string
	ActiveAt gamemath.Window
}

var Pickup = donburi.NewComponentType[PickupData]()
