package config

import (
	"fmt"
	"io"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// tuning mirrors the subset of config that may be overridden from a YAML file.
// Keys absent from the file keep their current value. An entry under
// enemy.types replaces the whole type definition.
type tuning struct {
	Screen Config       `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Room   RoomConfig   `yaml:"room"`
	Pickup PickupConfig `yaml:"pickup"`
	Camera CameraConfig `yaml:"camera"`
}

// LoadOverrides decodes a YAML tuning document over the current config.
func LoadOverrides(r io.Reader) error {
	// The decoder writes into maps in place, so enemy types get their own
	// copy until the document has been validated.
	t := tuning{
		Screen: *C,
		Player: Player,
		Enemy:  EnemyConfig{Types: maps.Clone(Enemy.Types)},
		Room:   Room,
		Pickup: Pickup,
		Camera: Camera,
	}

	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode tuning: %w", err)
	}

	if t.Screen.TPS <= 0 {
		return fmt.Errorf("decode tuning: tps must be positive, got %d", t.Screen.TPS)
	}
	if t.Room.GridMult <= 0 {
		return fmt.Errorf("decode tuning: gridMult must be positive, got %v", t.Room.GridMult)
	}

	*C = t.Screen
	Player = t.Player
	Enemy = t.Enemy
	Room = t.Room
	Pickup = t.Pickup
	Camera = t.Camera
	return nil
}

// LoadOverridesFile is LoadOverrides for a file path.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
