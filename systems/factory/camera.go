package factory

import (
	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera places the camera on a room without panning.
func CreateCamera(ecs *ecs.ECS, grid gamemath.RoomGrid, room gamemath.RoomIndex) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: grid.Origin(room),
		Room:     room,
	})
	return camera
}

// CreateClock adds the simulation clock stepping delta seconds per tick.
func CreateClock(ecs *ecs.ECS, delta float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Delta: delta})
	return clock
}
