package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Sword  = donburi.NewTag().SetName("Sword")
	Pickup = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvSword  = "Sword"
	ResolvPickup = "pickup"

	// Objects carrying ResolvDamage have a DamageEffect component.
	ResolvDamage = "damage"
)
