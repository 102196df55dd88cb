// Package leveldata parses dungeon TMX maps into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Dungeon holds everything the scene needs from a TMX map. All coordinates
// are world units (one tile = 1) with +Y up; a tile's center sits on integer
// coordinates.
type Dungeon struct {
	Name        string
	Width       int // tiles
	Height      int // tiles
	Walls       []Tile
	PlayerSpawn Spawn
	Enemies     []Spawn
	Pickups     []Spawn
}

// Tile is a solid wall cell.
type Tile struct {
	X, Y int
}

// Spawn is a point object placed in the map.
type Spawn struct {
	X, Y float64
	Kind string // enemy type name or pickup kind; empty for the player
}

// RoomCount returns how many rooms fit along each axis for the given room
// size, rounding partial rooms down.
func (d *Dungeon) RoomCount(roomW, roomH float64) (int, int) {
	return int(float64(d.Width) / roomW), int(float64(d.Height) / roomH)
}
