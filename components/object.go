package components

import (
	"github.com/automoto/delver/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpaceScale is the number of collision-space units per world unit. resolv
// sizes cells in whole units and treats object extents as pixel counts, so
// bodies live in the space at pixel scale. A power of two keeps the
// conversion exact.
const SpaceScale = 16.0

// NewObject creates a collision object for a world-space box with (x, y) at
// its minimum corner.
func NewObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*SpaceScale, y*SpaceScale, w*SpaceScale, h*SpaceScale, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*SpaceScale, h*SpaceScale))
	return obj
}

// WorldRect returns an object's bounds in world units.
func WorldRect(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{
		X: o.X / SpaceScale,
		Y: o.Y / SpaceScale,
		W: o.W / SpaceScale,
		H: o.H / SpaceScale,
	}
}

type ObjectData struct {
	*resolv.Object
}

// Bounds returns the object's box in world units.
func (o *ObjectData) Bounds() gamemath.Rect {
	return WorldRect(o.Object)
}

// Pos returns the middle of the object's bounds in world units.
func (o *ObjectData) Pos() math.Vec2 {
	return math.Vec2{
		X: (o.X + o.W/2) / SpaceScale,
		Y: (o.Y + o.H/2) / SpaceScale,
	}
}

// MoveTo moves the object so its middle lands on c.
func (o *ObjectData) MoveTo(c math.Vec2) {
	o.X = c.X*SpaceScale - o.W/2
	o.Y = c.Y*SpaceScale - o.H/2
	o.Update()
}

// Translate shifts the object by a world-space offset. Callers run Update
// once they are done moving it.
func (o *ObjectData) Translate(dx, dy float64) {
	o.X += dx * SpaceScale
	o.Y += dy * SpaceScale
}

// Resize changes the object's world-space size, keeping its minimum corner.
func (o *ObjectData) Resize(w, h float64) {
	o.W, o.H = w*SpaceScale, h*SpaceScale
	o.SetShape(resolv.NewRectangle(0, 0, o.W, o.H))
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
