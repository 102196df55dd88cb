package systems

import (
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
)

// decayInvincibility clears invincibility once the clock is past its
// deadline. It reports whether the entity is still invincible.
func decayInvincibility(now float64, inv *components.InvincibleData) bool {
	if inv.On && inv.Until.Passed(now) {
		inv.On = false
	}
	return inv.On
}

// grantInvincibility starts an invincibility window.
func grantInvincibility(now, duration float64, inv *components.InvincibleData) {
	inv.On = true
	inv.Until = gamemath.OpenWindow(now, duration)
}

// tintFollows paints the hurt color while invincible.
func tintFollows(tint *components.TintData, invincible bool) {
	if invincible {
		tint.Current = cfg.LightRed
		return
	}
	tint.Reset()
}
