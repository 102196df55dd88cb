package factory

import (
	"fmt"

	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewRoomGrid cuts a dungeon into rooms using the configured room size.
func NewRoomGrid(level *leveldata.Dungeon) gamemath.RoomGrid {
	roomsX, roomsY := level.RoomCount(cfg.Room.Width, cfg.Room.Height)
	grid := gamemath.RoomGrid{
		RoomW:    cfg.Room.Width,
		RoomH:    cfg.Room.Height,
		GridMult: cfg.Room.GridMult,
		MaxX:     roomsX - 1,
		MaxY:     roomsY - 1,
	}
	for i, d := range cfg.Room.Doors {
		grid.Doors[i] = math.Vec2{X: d[0], Y: d[1]}
	}
	return grid
}

// CreateDungeon registers the dungeon and its room grid.
func CreateDungeon(ecs *ecs.ECS, level *leveldata.Dungeon) *donburi.Entry {
	dungeon := archetypes.Dungeon.Spawn(ecs)
	components.Dungeon.Set(dungeon, &components.DungeonData{
		Level: level,
		Grid:  NewRoomGrid(level),
	})
	return dungeon
}

// PopulateDungeon builds a complete world from a dungeon: clock, collision
// space, walls, player, enemies, pickups and camera. It returns the player.
func PopulateDungeon(ecs *ecs.ECS, level *leveldata.Dungeon) (*donburi.Entry, error) {
	CreateClock(ecs, 1/float64(cfg.C.TPS))
	CreateSpace(ecs, level.Width, level.Height)
	dungeon := CreateDungeon(ecs, level)

	for _, t := range level.Walls {
		if _, err := CreateWall(ecs, t.X, t.Y); err != nil {
			return nil, err
		}
	}

	spawn := math.Vec2{X: level.PlayerSpawn.X, Y: level.PlayerSpawn.Y}
	player, err := CreatePlayer(ecs, spawn)
	if err != nil {
		return nil, err
	}

	for _, s := range level.Enemies {
		if _, err := CreateEnemy(ecs, math.Vec2{X: s.X, Y: s.Y}, s.Kind); err != nil {
			return nil, fmt.Errorf("%s: %w", level.Name, err)
		}
	}
	for _, s := range level.Pickups {
		if _, err := CreatePickup(ecs, math.Vec2{X: s.X, Y: s.Y}, s.Kind, 0); err != nil {
			return nil, err
		}
	}

	grid := components.Dungeon.Get(dungeon).Grid
	CreateCamera(ecs, grid, components.Player.Get(player).Room)

	return player, nil
}
