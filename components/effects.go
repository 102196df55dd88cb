package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TintData is the color cue drawn over an entity's sprite. The combat code
// turns it red while the entity is invincible.
type TintData struct {
	Base    color.RGBA
	Current color.RGBA
}

// Reset puts the tint back to the entity's own color.
func (t *TintData) Reset() {
	t.Current = t.Base
}

var Tint = donburi.NewComponentType[TintData]()
