package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/delver/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// DefaultDungeon is the map loaded when no other is requested.
const DefaultDungeon = "dungeon"

// LoadDungeon parses an embedded dungeon map by stem name.
func LoadDungeon(name string) (*leveldata.Dungeon, error) {
	d, err := leveldata.LoadDungeon(levelFS, fmt.Sprintf("levels/%s.tmx", name))
	if err != nil {
		return nil, fmt.Errorf("dungeon %q: %w", name, err)
	}
	return d, nil
}

// DungeonNames lists the embedded maps in sorted order.
func DungeonNames() ([]string, error) {
	_, names, err := leveldata.LoadAllDungeons(levelFS, "levels")
	return names, err
}
