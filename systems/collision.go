package systems

import (
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions turns overlaps into damage events and pickup collection.
// Damage is only raised on the tick a contact begins: a body resting against
// an enemy is hurt once, not every tick.
func UpdateCollisions(ecs *ecs.ECS) {
	ctx := tickContext(ecs.World)

	type hit struct {
		target *donburi.Entry
		event  components.DamageEventData
	}
	var hits []hit
	var collected []*donburi.Entry

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		for _, src := range beginContacts(e, tags.ResolvEnemy) {
			if ev, ok := damageFrom(src); ok {
				hits = append(hits, hit{target: e, event: ev})
			}
		}
		for _, other := range overlapping(components.Object.Get(e).Object, tags.ResolvPickup) {
			pickup, ok := other.Data.(*donburi.Entry)
			if !ok || !pickup.Valid() {
				continue
			}
			if components.Pickup.Get(pickup).ActiveAt.Reached(ctx.Now) {
				collected = append(collected, pickup)
			}
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		for _, src := range beginContacts(e, tags.ResolvSword) {
			if ev, ok := damageFrom(src); ok {
				hits = append(hits, hit{target: e, event: ev})
			}
		}
	})

	// Attach after iterating; adding components moves entries between
	// archetypes.
	for _, h := range hits {
		QueueDamage(h.target, h.event)
	}
	if len(collected) > 0 {
		if playerEntry, ok := tags.Player.First(ecs.World); ok {
			for _, pickup := range collected {
				CollectPickup(ecs, playerEntry, pickup)
			}
		}
	}
}

// QueueDamage gives e a damage event for this tick. A second event in the
// same tick replaces the first.
func QueueDamage(e *donburi.Entry, ev components.DamageEventData) {
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.SetValue(e, ev)
		return
	}
	donburi.Add(e, components.DamageEvent, &ev)
}

// beginContacts updates e's contact set against objects carrying tag and
// returns the ones that were not touching last tick.
func beginContacts(e *donburi.Entry, tag string) []*resolv.Object {
	contacts := components.Contacts.Get(e)
	obj := components.Object.Get(e)

	now := map[donburi.Entity]bool{}
	var began []*resolv.Object
	for _, other := range overlapping(obj.Object, tag) {
		src, ok := other.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		id := src.Entity()
		now[id] = true
		if !contacts.Touching[id] {
			began = append(began, other)
		}
	}
	contacts.Touching = now
	return began
}

// overlapping returns the objects tagged tag whose bounds overlap o.
func overlapping(o *resolv.Object, tag string) []*resolv.Object {
	check := o.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	self := components.WorldRect(o)
	var out []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if other != o && self.Overlaps(components.WorldRect(other)) {
			out = append(out, other)
		}
	}
	return out
}

// damageFrom builds the event a damaging object deals. The root position is
// the sword's owner for swords and the object itself for anything else.
func damageFrom(src *resolv.Object) (components.DamageEventData, bool) {
	entry, ok := src.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.DamageEffect) {
		return components.DamageEventData{}, false
	}
	effect := components.DamageEffect.Get(entry)
	srcPos := components.Object.Get(entry).Pos()

	rootPos := srcPos
	if entry.HasComponent(components.Sword) {
		if owner := components.Sword.Get(entry).Owner; owner != nil && owner.Valid() {
			rootPos = components.Object.Get(owner).Pos()
		}
	}

	return components.DamageEventData{
		Amount:        effect.Damage,
		Knockback:     effect.Knockback,
		SourcePos:     srcPos,
		SourceRootPos: rootPos,
	}, true
}
