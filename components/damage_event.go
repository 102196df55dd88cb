package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// DamageEventData is queued on the entity that got hit and consumed by the
// combat system in the same tick. An entity holds at most one; a second hit
// in the same tick overwrites the first.
type DamageEventData struct {
	Amount        int
	Knockback     bool
	SourcePos     math.Vec2 // center of the object that touched us
	SourceRootPos math.Vec2 // center of the entity that owns it, e.g. the player behind a sword
}

// DamageEffectData marks an object that hurts whatever it touches.
type DamageEffectData struct {
	Damage    int
	Knockback bool
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
var DamageEffect = donburi.NewComponentType[DamageEffectData]()
