package systems

import (
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the view on the player's room, easing across when the
// room changes.
func UpdateCamera(e *ecs.ECS) {
	ctx := tickContext(e.World)
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	_, p, ok := playerRooms(e)
	if ok && p.Room != camera.Room {
		dungeonEntry, _ := components.Dungeon.First(e.World)
		target := components.Dungeon.Get(dungeonEntry).Grid.Origin(p.Room)
		startPan(camera, target.X, target.Y)
		camera.Room = p.Room
	}

	stepPan(camera, float32(ctx.Delta))
}

func startPan(camera *components.CameraData, x, y float64) {
	d := float32(config.Camera.PanDuration)
	if d <= 0 {
		camera.Position.X, camera.Position.Y = x, y
		camera.PanX, camera.PanY = nil, nil
		return
	}
	camera.PanX = gween.New(float32(camera.Position.X), float32(x), d, ease.InOutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(y), d, ease.InOutQuad)
}

func stepPan(camera *components.CameraData, dt float32) {
	if camera.PanX != nil {
		x, done := camera.PanX.Update(dt)
		camera.Position.X = float64(x)
		if done {
			camera.PanX = nil
		}
	}
	if camera.PanY != nil {
		y, done := camera.PanY.Update(dt)
		camera.Position.Y = float64(y)
		if done {
			camera.PanY = nil
		}
	}
}
