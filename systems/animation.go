package systems

import (
	"github.com/automoto/delver/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every playing clip at the speed logic asked for.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Current != nil {
			anim.Current.Update(float32(anim.Speed))
		}
	})
}
