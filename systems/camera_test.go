package systems

import (
	"testing"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func cameraOf(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	return components.Camera.Get(entry)
}

func TestCameraPansToNewRoom(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	camera := cameraOf(t, e)
	require.Equal(t, 0.0, camera.Position.X)

	components.Player.Get(player).Room = gamemath.RoomIndex{X: 1, Y: 0}
	UpdateCamera(e)

	assert.Equal(t, gamemath.RoomIndex{X: 1, Y: 0}, camera.Room)
	assert.True(t, camera.Panning())
	assert.Greater(t, camera.Position.X, 0.0)
	assert.Less(t, camera.Position.X, 16.0)

	for i := 0; i < 40; i++ {
		UpdateCamera(e)
	}
	assert.False(t, camera.Panning())
	assert.InDelta(t, 16, camera.Position.X, 1e-4)
	assert.InDelta(t, 0, camera.Position.Y, 1e-4)
}

func TestCameraJumpsWithoutPanDuration(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	cfg.Camera.PanDuration = 0
	camera := cameraOf(t, e)

	components.Player.Get(player).Room = gamemath.RoomIndex{X: 0, Y: 1}
	UpdateCamera(e)

	assert.False(t, camera.Panning())
	assert.Equal(t, 0.0, camera.Position.X)
	assert.Equal(t, 11.0, camera.Position.Y)
}

func TestCameraIdleWithoutPlayer(t *testing.T) {
	e, player := newTestWorld(t, openDungeon())
	camera := cameraOf(t, e)
	before := *camera

	e.World.Remove(player.Entity())
	UpdateCamera(e)

	assert.Equal(t, before.Position, camera.Position)
	assert.False(t, camera.Panning())
}
