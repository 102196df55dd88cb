package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names expected in dungeon maps.
const (
	WallLayer        = "walls"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
	PickupGroup      = "Pickups"
)

// ErrNoPlayerSpawn is returned for maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn point defined in map")

// LoadDungeon parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadDungeon(fsys fs.FS, tmxPath string) (*Dungeon, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	d := &Dungeon{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for row := 0; row < levelMap.Height; row++ {
			for col := 0; col < levelMap.Width; col++ {
				tile := layer.Tiles[row*levelMap.Width+col]
				if tile.IsNil() {
					continue
				}
				d.Walls = append(d.Walls, Tile{X: col, Y: levelMap.Height - 1 - row})
			}
		}
		break
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(o *tiled.Object) (float64, float64) {
		x := o.X/tileW - 0.5
		y := float64(levelMap.Height) - o.Y/tileH - 0.5
		return x, y
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				x, y := toWorld(o)
				d.PlayerSpawn = Spawn{X: x, Y: y}
				foundPlayer = true
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				x, y := toWorld(o)
				d.Enemies = append(d.Enemies, Spawn{
					X:    x,
					Y:    y,
					Kind: o.Properties.GetString("enemyType"),
				})
			}
		case PickupGroup:
			for _, o := range og.Objects {
				x, y := toWorld(o)
				d.Pickups = append(d.Pickups, Spawn{
					X:    x,
					Y:    y,
					Kind: o.Properties.GetString("kind"),
				})
			}
		}
	}

	if !foundPlayer {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Stable spawn order regardless of editor object order
	sortSpawns(d.Enemies)
	sortSpawns(d.Pickups)

	return d, nil
}

// LoadAllDungeons discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllDungeons(fsys fs.FS, dir string) (map[string]*Dungeon, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	dungeons := make(map[string]*Dungeon, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		d, err := LoadDungeon(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		dungeons[d.Name] = d
		names = append(names, d.Name)
	}

	sort.Strings(names)
	return dungeons, names, nil
}

func sortSpawns(s []Spawn) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].X != s[j].X {
			return s[i].X < s[j].X
		}
		return s[i].Y < s[j].Y
	})
}
