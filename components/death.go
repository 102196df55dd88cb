package components

import "github.com/yohamta/donburi"

// DeathData marks a player that has entered its terminal mode. At is the
// clock time of death; the scene waits a moment before showing game over.
type DeathData struct {
	At float64
}

var Death = donburi.NewComponentType[DeathData]()
