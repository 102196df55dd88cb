package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Times are in seconds, speeds in world units (tiles) per second.
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"`

	// Attack timing
	AttackDuration float64 `yaml:"attackDuration"` // how long the attack mode lasts
	AttackDelay    float64 `yaml:"attackDelay"`    // minimum time between attack starts

	// Room transitions
	TransitionDelay float64 `yaml:"transitionDelay"`

	// Combat
	MaxHealth          int     `yaml:"maxHealth"`
	KnockbackSpeed     float64 `yaml:"knockbackSpeed"`
	KnockbackDuration  float64 `yaml:"knockbackDuration"`
	InvincibleDuration float64 `yaml:"invincibleDuration"`

	// Sword hitbox spawned in front of the player while attacking
	SwordDamage    int     `yaml:"swordDamage"`
	SwordKnockback bool    `yaml:"swordKnockback"`
	SwordReach     float64 `yaml:"swordReach"`
	SwordWidth     float64 `yaml:"swordWidth"`

	// Dimensions
	CollisionSize float64 `yaml:"collisionSize"`

	// Animation base name, e.g. "Dray" -> "Dray_Walk_1"
	AnimationBase string `yaml:"animationBase"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     string `yaml:"name"`
	Behavior string `yaml:"behavior"` // "skeletos" or "spiker"

	MaxHealth int     `yaml:"maxHealth"`
	Speed     float64 `yaml:"speed"`
	ThinkMax  float64 `yaml:"thinkMax"` // upper bound of the wander decision interval

	// Combat
	KnockbackSpeed     float64 `yaml:"knockbackSpeed"`
	KnockbackDuration  float64 `yaml:"knockbackDuration"`
	InvincibleDuration float64 `yaml:"invincibleDuration"`

	// Damage dealt to the player on contact
	TouchDamage    int  `yaml:"touchDamage"`
	TouchKnockback bool `yaml:"touchKnockback"`

	// Dimensions
	CollisionSize float64 `yaml:"collisionSize"`

	// Visual
	TintColor color.RGBA `yaml:"tintColor"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`
}

// RoomConfig describes the room grid the dungeon is cut into.
type RoomConfig struct {
	Width    float64 `yaml:"width"`  // room width in tiles
	Height   float64 `yaml:"height"` // room height in tiles
	GridMult float64 `yaml:"gridMult"`

	// Door cells in room-local coordinates, ordered right, up, left, down.
	Doors [4][2]float64 `yaml:"doors"`
}

// PickupConfig contains collectible configuration values
type PickupConfig struct {
	ActivationDelay float64 `yaml:"activationDelay"` // collider stays disabled this long after spawn
	HealthRestore   int     `yaml:"healthRestore"`
	Size            float64 `yaml:"size"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PanDuration float64 `yaml:"panDuration"` // seconds to pan between rooms
}

// HUDConfig contains heads-up display layout values, in screen pixels.
type HUDConfig struct {
	Margin       float64
	HeartSize    float64
	HeartGap     float64
	FontSize     float64
	TextBgColor  color.RGBA
	HeartColor   color.RGBA
	HeartBgColor color.RGBA
	KeyColor     color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	Delay             float64 // seconds between death and the game over screen
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width    int `yaml:"width"`    // logical screen width in pixels
	Height   int `yaml:"height"`   // logical screen height in pixels
	TileSize int `yaml:"tileSize"` // pixels per world unit
	TPS      int `yaml:"tps"`      // simulation ticks per second
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	LogPath      string
	Verbose      bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Room RoomConfig
var Pickup PickupConfig
var Camera CameraConfig
var Debug DebugConfig
var HUD HUDConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Bone         = color.RGBA{R: 230, G: 225, B: 200, A: 255}
	Stone        = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	Floor        = color.RGBA{R: 25, G: 25, B: 35, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every config value to its compiled-in default.
func Reset() {
	C = &Config{
		Width:    256,
		Height:   176,
		TileSize: 16,
		TPS:      60,
	}

	Player = PlayerConfig{
		Speed: 5,

		AttackDuration: 0.25,
		AttackDelay:    0.5,

		TransitionDelay: 0.5,

		MaxHealth:          10,
		KnockbackSpeed:     10,
		KnockbackDuration:  0.25,
		InvincibleDuration: 0.5,

		SwordDamage:    2,
		SwordKnockback: true,
		SwordReach:     0.75,
		SwordWidth:     0.5,

		CollisionSize: 0.8,
		AnimationBase: "Dray",
	}

	skeletosType := EnemyTypeConfig{
		Name:               "Skeletos",
		Behavior:           "skeletos",
		MaxHealth:          4,
		Speed:              2,
		ThinkMax:           4,
		KnockbackSpeed:     10,
		KnockbackDuration:  0.25,
		InvincibleDuration: 0.5,
		TouchDamage:        1,
		TouchKnockback:     true,
		CollisionSize:      0.8,
		TintColor:          Bone,
	}

	spikerType := EnemyTypeConfig{
		Name:               "Spiker",
		Behavior:           "spiker",
		MaxHealth:          1,
		Speed:              0,
		KnockbackSpeed:     0,
		KnockbackDuration:  0,
		InvincibleDuration: 0.5,
		TouchDamage:        2,
		TouchKnockback:     true,
		CollisionSize:      0.9,
		TintColor:          Orange,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Skeletos": skeletosType,
			"Spiker":   spikerType,
		},
	}

	Room = RoomConfig{
		Width:    16,
		Height:   11,
		GridMult: 0.5,
		Doors: [4][2]float64{
			{14, 5},  // right
			{7.5, 9}, // up
			{1, 5},   // left
			{7.5, 1}, // down
		},
	}

	Pickup = PickupConfig{
		ActivationDelay: 0.5,
		HealthRestore:   2,
		Size:            0.6,
	}

	Camera = CameraConfig{
		PanDuration: 0.5,
	}

	HUD = HUDConfig{
		Margin:       4,
		HeartSize:    6,
		HeartGap:     2,
		FontSize:     10,
		TextBgColor:  BlackOverlay,
		HeartColor:   LightRed,
		HeartBgColor: color.RGBA{R: 60, G: 20, B: 20, A: 255},
		KeyColor:     Yellow,
	}

	GameOver = GameOverConfig{
		Delay:             1,
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: Orange,
		TitleY:            56,
		MenuStartY:        100,
		MenuItemHeight:    16,
		MenuItemGap:       8,
		MenuOptions:       []string{"Retry", "Quit"},
	}

	Debug = DebugConfig{}
}
