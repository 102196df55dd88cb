package components

import (
	"github.com/automoto/delver/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData tracks the room on screen. Position is the world position of
// the bottom-left corner of the view.
type CameraData struct {
	Position math.Vec2
	Room     gamemath.RoomIndex

	// Active pan between rooms; nil when the camera is at rest.
	PanX, PanY *gween.Tween
}

// Panning reports whether a pan tween is still running.
func (c *CameraData) Panning() bool {
	return c.PanX != nil || c.PanY != nil
}

var Camera = donburi.NewComponentType[CameraData]()
