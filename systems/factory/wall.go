package factory

import (
	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid tile centered on (x, y).
func CreateWall(ecs *ecs.ECS, x, y int) (*donburi.Entry, error) {
	space, err := spaceOf(ecs)
	if err != nil {
		return nil, wrap("wall", err)
	}

	wall := archetypes.Wall.Spawn(ecs)

	obj := components.NewObject(float64(x)-0.5, float64(y)-0.5, 1, 1, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	space.Add(obj)

	return wall, nil
}
