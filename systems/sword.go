package systems

import (
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateSword puts the sword hitbox in front of its owner for as long as the
// owner is attacking, and takes it out of the collision space otherwise.
func UpdateSword(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	tags.Sword.Each(ecs.World, func(e *donburi.Entry) {
		sword := components.Sword.Get(e)
		obj := components.Object.Get(e)

		owner := sword.Owner
		if owner == nil || !owner.Valid() {
			if sword.Active {
				space.Remove(obj.Object)
				sword.Active = false
			}
			return
		}

		p := components.Player.Get(owner)
		if p.Mode != cfg.Attack {
			if sword.Active {
				space.Remove(obj.Object)
				sword.Active = false
			}
			return
		}

		placeSword(obj, components.Object.Get(owner).Pos(), p)
		if !sword.Active {
			space.Add(obj.Object)
			sword.Active = true
		}
	})
}

// placeSword sizes and centers the hitbox just past the holder's body on the
// side it is facing.
func placeSword(obj *components.ObjectData, holder math.Vec2, m components.FacingMover) {
	facing := m.Facing()
	reach, width := cfg.Player.SwordReach, cfg.Player.SwordWidth

	w, h := reach, width
	if facing == gamemath.DirUp || facing == gamemath.DirDown {
		w, h = width, reach
	}
	if b := obj.Bounds(); b.W != w || b.H != h {
		obj.Resize(w, h)
	}

	offset := cfg.Player.CollisionSize/2 + reach/2
	center := gamemath.Add(holder, gamemath.Scale(gamemath.DirectionVector(facing), offset))
	obj.MoveTo(center)
}
