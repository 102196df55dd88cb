package components

import (
	cfg "github.com/automoto/delver/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action reports the state of one action this frame.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()

// InputSnapshotData is the player's input for one tick. Dir is indexed by
// facing (right, up, left, down). AttackPressed is edge-triggered: it is true
// only on the tick the button went down.
type InputSnapshotData struct {
	Dir           [4]bool
	AttackPressed bool
}

var InputSnapshot = donburi.NewComponentType[InputSnapshotData]()

// HostInputData carries requests the scene handles outside the simulation.
type HostInputData struct {
	Save bool
	Load bool
	Quit bool
}

var HostInput = donburi.NewComponentType[HostInputData]()
