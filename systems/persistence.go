package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/systems/factory"
	"github.com/automoto/delver/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// saveSlot is the gdata item holding the quick save.
const saveSlot = "quicksave"

// ItemStore is the part of gdata.Manager the save system uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var _ ItemStore = (*gdata.Manager)(nil)

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for save slots.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "delver",
	})
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	gdataManager = m
	return nil
}

// SaveStore returns the opened gdata store, or nil before InitPersistence.
func SaveStore() ItemStore {
	if gdataManager == nil {
		return nil
	}
	return gdataManager
}

// ErrNoSave is returned when loading from an empty slot.
var ErrNoSave = errors.New("no saved game")

// BodySnapshot is the state every living entity shares.
type BodySnapshot struct {
	Pos               math.Vec2       `json:"pos"`
	Velocity          math.Vec2       `json:"velocity"`
	Health            int             `json:"health"`
	MaxHealth         int             `json:"maxHealth"`
	Invincible        bool            `json:"invincible"`
	InvincibleUntil   gamemath.Window `json:"invincibleUntil"`
	KnockbackVelocity math.Vec2       `json:"knockbackVelocity"`
	KnockbackUntil    gamemath.Window `json:"knockbackUntil"`
	Animation         string          `json:"animation"`
	AnimationSpeed    float64         `json:"animationSpeed"`
}

type PlayerSnapshot struct {
	BodySnapshot
	Mode             cfg.StateID        `json:"mode"`
	Facing           int                `json:"facing"`
	DirHeld          int                `json:"dirHeld"`
	NumKeys          int                `json:"numKeys"`
	AttackReadyAt    gamemath.Window    `json:"attackReadyAt"`
	AttackEndsAt     gamemath.Window    `json:"attackEndsAt"`
	TransitionEndsAt gamemath.Window    `json:"transitionEndsAt"`
	TransitionPos    math.Vec2          `json:"transitionPos"`
	Room             gamemath.RoomIndex `json:"room"`
	DiedAt           *float64           `json:"diedAt,omitempty"`
}

type EnemySnapshot struct {
	BodySnapshot
	Type           string          `json:"type"`
	Facing         int             `json:"facing"`
	Knockback      bool            `json:"knockback"`
	NextDecisionAt gamemath.Window `json:"nextDecisionAt"`
}

type PickupSnapshot struct {
	Kind     string          `json:"kind"`
	Pos      math.Vec2       `json:"pos"`
	ActiveAt gamemath.Window `json:"activeAt"`
}

// Snapshot is a whole dungeon run frozen at one tick. Deadlines are absolute,
// so the clock is saved with them.
type Snapshot struct {
	Now     float64          `json:"now"`
	Tick    int              `json:"tick"`
	Player  PlayerSnapshot   `json:"player"`
	Enemies []EnemySnapshot  `json:"enemies"`
	Pickups []PickupSnapshot `json:"pickups"`
}

// TakeSnapshot captures the run.
func TakeSnapshot(ecs *ecs.ECS) (Snapshot, error) {
	var s Snapshot
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		s.Now, s.Tick = clock.Now, clock.Tick
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return s, errors.New("snapshot: no player")
	}
	p := components.Player.Get(playerEntry)
	s.Player = PlayerSnapshot{
		BodySnapshot:     snapshotBody(playerEntry),
		Mode:             p.Mode,
		Facing:           p.FaceDir,
		DirHeld:          p.DirHeld,
		NumKeys:          p.NumKeys,
		AttackReadyAt:    p.AttackReadyAt,
		AttackEndsAt:     p.AttackEndsAt,
		TransitionEndsAt: p.TransitionEndsAt,
		TransitionPos:    p.TransitionPos,
		Room:             p.Room,
	}
	if playerEntry.HasComponent(components.Death) {
		at := components.Death.Get(playerEntry).At
		s.Player.DiedAt = &at
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		s.Enemies = append(s.Enemies, EnemySnapshot{
			BodySnapshot:   snapshotBody(e),
			Type:           enemy.TypeName,
			Facing:         enemy.Facing,
			Knockback:      enemy.Knockback,
			NextDecisionAt: enemy.NextDecisionAt,
		})
	})

	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		s.Pickups = append(s.Pickups, PickupSnapshot{
			Kind:     pickup.Kind,
			Pos:      components.Object.Get(e).Pos(),
			ActiveAt: pickup.ActiveAt,
		})
	})

	return s, nil
}

func snapshotBody(e *donburi.Entry) BodySnapshot {
	health := components.Health.Get(e)
	inv := components.Invincible.Get(e)
	kb := components.Knockback.Get(e)
	anim := components.Animation.Get(e)
	return BodySnapshot{
		Pos:               components.Object.Get(e).Pos(),
		Velocity:          components.Physics.Get(e).Velocity,
		Health:            health.Current,
		MaxHealth:         health.Max,
		Invincible:        inv.On,
		InvincibleUntil:   inv.Until,
		KnockbackVelocity: kb.Velocity,
		KnockbackUntil:    kb.Until,
		Animation:         anim.Key,
		AnimationSpeed:    anim.Speed,
	}
}

func restoreBody(e *donburi.Entry, b BodySnapshot) {
	components.Object.Get(e).MoveTo(b.Pos)
	components.Physics.Get(e).Velocity = b.Velocity
	components.Health.SetValue(e, components.HealthData{Current: b.Health, Max: b.MaxHealth})
	components.Invincible.SetValue(e, components.InvincibleData{On: b.Invincible, Until: b.InvincibleUntil})
	components.Knockback.SetValue(e, components.KnockbackData{Velocity: b.KnockbackVelocity, Until: b.KnockbackUntil})
	components.Animation.Get(e).Resume(b.Animation, b.AnimationSpeed)
	if e.HasComponent(components.Contacts) {
		components.Contacts.Get(e).Touching = map[donburi.Entity]bool{}
	}
}

// RestoreSnapshot puts a world built from the same dungeon back into the
// saved state. Enemies and pickups are respawned from the snapshot.
func RestoreSnapshot(ecs *ecs.ECS, s Snapshot) error {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return errors.New("restore: no player")
	}
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		clock.Now, clock.Tick = s.Now, s.Tick
	}

	p := components.Player.Get(playerEntry)
	p.Mode = s.Player.Mode
	p.FaceDir = s.Player.Facing
	p.DirHeld = s.Player.DirHeld
	p.NumKeys = s.Player.NumKeys
	p.AttackReadyAt = s.Player.AttackReadyAt
	p.AttackEndsAt = s.Player.AttackEndsAt
	p.TransitionEndsAt = s.Player.TransitionEndsAt
	p.TransitionPos = s.Player.TransitionPos
	p.Room = s.Player.Room
	restoreBody(playerEntry, s.Player.BodySnapshot)

	switch {
	case s.Player.DiedAt != nil && !playerEntry.HasComponent(components.Death):
		donburi.Add(playerEntry, components.Death, &components.DeathData{At: *s.Player.DiedAt})
	case s.Player.DiedAt == nil && playerEntry.HasComponent(components.Death):
		donburi.Remove[components.DeathData](playerEntry, components.Death)
	}

	removeAll(ecs, tags.Enemy)
	removeAll(ecs, tags.Pickup)

	for _, es := range s.Enemies {
		e, err := factory.CreateEnemy(ecs, es.Pos, es.Type)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		enemy := components.Enemy.Get(e)
		enemy.Facing = es.Facing
		enemy.Knockback = es.Knockback
		enemy.NextDecisionAt = es.NextDecisionAt
		restoreBody(e, es.BodySnapshot)
	}
	for _, ps := range s.Pickups {
		e, err := factory.CreatePickup(ecs, ps.Pos, ps.Kind, 0)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		components.Pickup.Get(e).ActiveAt = ps.ActiveAt
	}

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		if dungeonEntry, ok := components.Dungeon.First(ecs.World); ok {
			camera := components.Camera.Get(cameraEntry)
			camera.Room = p.Room
			camera.Position = components.Dungeon.Get(dungeonEntry).Grid.Origin(p.Room)
			camera.PanX, camera.PanY = nil, nil
		}
	}
	return nil
}

// removeAll drops every entity carrying tag from the space and the world.
func removeAll(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	var doomed []*donburi.Entry
	tag.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range doomed {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}

// SaveGame writes the run to the quick save slot.
func SaveGame(ecs *ecs.ECS, store ItemStore) error {
	if store == nil {
		return errors.New("save: persistence not initialized")
	}
	s, err := TakeSnapshot(ecs)
	if err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("save: encode snapshot: %w", err)
	}
	if err := store.SaveItem(saveSlot, data); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logging.Log.Infow("game saved", "at", s.Now, "enemies", len(s.Enemies))
	return nil
}

// LoadGame restores the run from the quick save slot.
func LoadGame(ecs *ecs.ECS, store ItemStore) error {
	if store == nil {
		return errors.New("load: persistence not initialized")
	}
	data, err := store.LoadItem(saveSlot)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if len(data) == 0 {
		return ErrNoSave
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("load: decode snapshot: %w", err)
	}
	if err := RestoreSnapshot(ecs, s); err != nil {
		return err
	}
	logging.Log.Infow("game loaded", "at", s.Now, "enemies", len(s.Enemies))
	return nil
}
