package components

import (
	"github.com/automoto/delver/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HealthData struct {
	Current int
	Max     int
}

// Restore adds n health without going over Max and returns what was added.
func (h *HealthData) Restore(n int) int {
	if n <= 0 || h.Current >= h.Max {
		return 0
	}
	if h.Current+n > h.Max {
		n = h.Max - h.Current
	}
	h.Current += n
	return n
}

// InvincibleData gates incoming damage. On clears once the clock passes
// Until.
type InvincibleData struct {
	On    bool
	Until gamemath.Window
}

// KnockbackData is the velocity forced onto an entity until the window ends.
type KnockbackData struct {
	Velocity math.Vec2
	Until    gamemath.Window
}

var Health = donburi.NewComponentType[HealthData]()
var Invincible = donburi.NewComponentType[InvincibleData]()
var Knockback = donburi.NewComponentType[KnockbackData]()
