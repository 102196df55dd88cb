package components

import (
	"strings"

	"github.com/automoto/delver/assets/animations"
	"github.com/automoto/delver/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the animation sink. Logic picks a clip and a playback
// speed every tick; the renderer advances Current and draws its frame.
type AnimationData struct {
	Base    string // e.g. "Dray"
	Key     string // e.g. "Dray_Walk_1"
	Speed   float64
	Current *animations.Animation
}

// Play selects the clip for a facing and sets the playback speed. Asking for
// the clip already playing only changes the speed.
func (a *AnimationData) Play(clip string, facing int, speed float64) {
	a.Speed = speed
	key := config.AnimationKey(a.Base, clip, facing)
	if key == a.Key && a.Current != nil {
		return
	}
	a.setKey(key)
}

// Hold selects the clip for a facing and stops it on its first frame.
func (a *AnimationData) Hold(clip string, facing int) {
	a.Play(clip, facing, 0)
	if a.Current != nil {
		a.Current.Restart()
	}
}

// Resume restores a key and speed taken from a snapshot.
func (a *AnimationData) Resume(key string, speed float64) {
	a.Speed = speed
	a.setKey(key)
}

func (a *AnimationData) setKey(key string) {
	a.Key = key
	def, ok := config.ClipAnimations[a.Clip()]
	if !ok {
		a.Current = nil
		return
	}
	a.Current = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
}

// SetSpeed changes playback speed without touching the clip.
func (a *AnimationData) SetSpeed(speed float64) {
	a.Speed = speed
}

// Clip returns the clip part of Key.
func (a *AnimationData) Clip() string {
	parts := strings.Split(a.Key, "_")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-2]
}

var Animation = donburi.NewComponentType[AnimationData]()
