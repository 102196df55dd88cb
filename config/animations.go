package config

import "fmt"

// Clip names used in animation keys.
const (
	ClipWalk   = "Walk"
	ClipAttack = "Attack"
	ClipDead   = "Dead"
)

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame at playback speed 1
}

// ClipAnimations maps a clip name to its frame layout. Every facing of a clip
// shares the same layout.
var ClipAnimations = map[string]AnimationDef{
	ClipWalk:   {First: 0, Last: 1, Step: 1, Speed: 8},
	ClipAttack: {First: 0, Last: 0, Step: 1, Speed: 0},
	ClipDead:   {First: 0, Last: 0, Step: 1, Speed: 0},
}

// AnimationKey builds the "{base}_{clip}_{facing}" key consumed by the
// animation player.
func AnimationKey(base, clip string, facing int) string {
	return fmt.Sprintf("%s_%s_%d", base, clip, facing)
}
