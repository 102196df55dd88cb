package components

import (
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is the player's controller state. Deadlines are absolute clock
// times; see gamemath.Window.
type PlayerData struct {
	Mode    cfg.StateID
	DirHeld int // last direction scanned as held this tick, or -1
	FaceDir int
	NumKeys int

	AttackReadyAt    gamemath.Window // earliest time a new attack may start
	AttackEndsAt     gamemath.Window
	TransitionEndsAt gamemath.Window
	TransitionPos    math.Vec2 // room-local position pinned during a transition

	Room gamemath.RoomIndex
}

// FacingMover is anything that faces one of four directions and may be
// walking that way.
type FacingMover interface {
	Facing() int
	Speed() float64
	Moving() bool
}

// KeyMaster is anything that carries keys.
type KeyMaster interface {
	KeyCount() int
	SetKeyCount(n int)
}

var (
	_ FacingMover = (*PlayerData)(nil)
	_ KeyMaster   = (*PlayerData)(nil)
)

// NewPlayerData returns the spawn state: idle, facing up, nothing held.
func NewPlayerData() PlayerData {
	return PlayerData{
		Mode:    cfg.Idle,
		DirHeld: -1,
		FaceDir: 1,
	}
}

func (p *PlayerData) Facing() int {
	return p.FaceDir
}

func (p *PlayerData) Speed() float64 {
	return cfg.Player.Speed
}

// Moving is true only while walking; attack, knockback and transition all
// hold the player in place or drive it externally.
func (p *PlayerData) Moving() bool {
	return p.Mode == cfg.Move
}

func (p *PlayerData) KeyCount() int {
	return p.NumKeys
}

func (p *PlayerData) SetKeyCount(n int) {
	if n < 0 {
		n = 0
	}
	p.NumKeys = n
}

var Player = donburi.NewComponentType[PlayerData]()
