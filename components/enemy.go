package components

import (
	"github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                 // "Skeletos", "Spiker"
	TypeConfig config.EnemyTypeConfig // copy of the type configuration at spawn
	Facing     int

	// Knockback is set while the enemy is being pushed and cleared on the
	// first tick after the push ends.
	Knockback bool

	NextDecisionAt gamemath.Window // when a wandering enemy next picks a facing
}

var Enemy = donburi.NewComponentType[EnemyData]()
