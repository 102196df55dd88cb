package systems

import (
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSkin is how deep a body may sit in a wall before the wall stops
// blocking it. It absorbs rounding left behind when a sweep stops a body flush
// against a wall.
const contactSkin = 1e-6

// UpdatePhysics integrates every body's velocity for one tick. Solid walls
// stop movement along the blocked axis only, so bodies slide along walls.
func UpdatePhysics(ecs *ecs.ECS) {
	ctx := tickContext(ecs.World)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dx := physics.Velocity.X * ctx.Delta
		dy := physics.Velocity.Y * ctx.Delta

		blockedX, blockedY := false, false
		if dx != 0 {
			dx, blockedX = sweepX(obj.Object, dx)
			obj.Translate(dx, 0)
		}
		if dy != 0 {
			dy, blockedY = sweepY(obj.Object, dy)
			obj.Translate(0, dy)
		}
		physics.Blocked = blockedX || blockedY

		if dx != 0 || dy != 0 {
			obj.Update()
		}
	})
}

// solidsNear returns walls the object would run into by moving (dx, dy)
// world units. resolv's Check only reports shared cells, so overlap is
// confirmed here, on the body shrunk by contactSkin. A wall the body is flush
// against does not stop movement along it. Walls already overlapped do not
// block, which lets a body that was placed inside one walk back out.
func solidsNear(o *resolv.Object, dx, dy float64) []gamemath.Rect {
	check := o.Check(dx*components.SpaceScale, dy*components.SpaceScale, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	inside := components.WorldRect(o).Inset(contactSkin)
	moved := inside
	moved.X += dx
	moved.Y += dy

	var hits []gamemath.Rect
	for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
		wb := components.WorldRect(wall)
		if moved.Overlaps(wb) && !inside.Overlaps(wb) {
			hits = append(hits, wb)
		}
	}
	return hits
}

// sweepX shortens a horizontal move so the object stops flush with the first
// wall in its way.
func sweepX(o *resolv.Object, dx float64) (float64, bool) {
	hits := solidsNear(o, dx, 0)
	if len(hits) == 0 {
		return dx, false
	}
	b := components.WorldRect(o)
	for _, wall := range hits {
		if dx > 0 {
			if gap := wall.X - (b.X + b.W); gap < dx {
				dx = max(gap, 0)
			}
		} else {
			if gap := (wall.X + wall.W) - b.X; gap > dx {
				dx = min(gap, 0)
			}
		}
	}
	return dx, true
}

// sweepY is sweepX for the vertical axis.
func sweepY(o *resolv.Object, dy float64) (float64, bool) {
	hits := solidsNear(o, 0, dy)
	if len(hits) == 0 {
		return dy, false
	}
	b := components.WorldRect(o)
	for _, wall := range hits {
		if dy > 0 {
			if gap := wall.Y - (b.Y + b.H); gap < dy {
				dy = max(gap, 0)
			}
		} else {
			if gap := (wall.Y + wall.H) - b.Y; gap > dy {
				dy = min(gap, 0)
			}
		}
	}
	return dy, true
}
