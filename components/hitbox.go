package components

import (
	"github.com/yohamta/donburi"
)

// SwordData is the hitbox the player swings. It is only in the collision
// space while Active.
type SwordData struct {
	Owner  *donburi.Entry
	Active bool
}

var Sword = donburi.NewComponentType[SwordData]()

// ContactsData remembers what an object overlapped last tick so damage is
// only dealt when a contact begins.
type ContactsData struct {
	Touching map[donburi.Entity]bool
}

var Contacts = donburi.NewComponentType[ContactsData]()
