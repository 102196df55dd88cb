package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collaborators every body needs at creation time.
var (
	ErrMissingSpace   = errors.New("no collision space in world")
	ErrMissingDungeon = errors.New("no dungeon in world")
)

// CreateSpace adds a collision space covering width x height tiles. Each
// cell is one tile.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := int(components.SpaceScale)
	spaceData := resolv.NewSpace(width*cell, height*cell, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

func spaceOf(ecs *ecs.ECS) (*resolv.Space, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, ErrMissingSpace
	}
	return components.Space.Get(spaceEntry), nil
}

func dungeonOf(ecs *ecs.ECS) (*components.DungeonData, error) {
	dungeonEntry, ok := components.Dungeon.First(ecs.World)
	if !ok {
		return nil, ErrMissingDungeon
	}
	return components.Dungeon.Get(dungeonEntry), nil
}

// newBody creates a square object centered on (x, y) and links it to e.
func newBody(e *donburi.Entry, x, y, size float64, tags ...string) *resolv.Object {
	obj := components.NewObject(x-size/2, y-size/2, size, size, tags...)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}

func wrap(what string, err error) error {
	return fmt.Errorf("create %s: %w", what, err)
}
