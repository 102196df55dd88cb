package systems

import (
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func UpdatePlayer(ecs *ecs.ECS) {
	ctx := tickContext(ecs.World)
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	rooms, _, ok := playerRooms(ecs)
	if !ok {
		return
	}
	StepPlayer(ctx, playerEntry, rooms)
}

// StepPlayer runs one tick of the player controller. Knockback and room
// transitions are overlays checked first; attack comes next and idle/move is
// what is left. The order of the steps is significant.
func StepPlayer(ctx TickContext, e *donburi.Entry, rooms RoomPositioner) {
	now := ctx.Now
	p := components.Player.Get(e)
	in := components.InputSnapshot.Get(e)
	inv := components.Invincible.Get(e)
	kb := components.Knockback.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)

	invincible := decayInvincibility(now, inv)
	if e.HasComponent(components.Tint) {
		tintFollows(components.Tint.Get(e), invincible)
	}

	if p.Mode == cfg.Dead {
		physics.Velocity = math.Vec2{}
		anim.Play(cfg.ClipDead, p.FaceDir, 0)
		return
	}

	if p.Mode == cfg.Knockback {
		physics.Velocity = kb.Velocity
		if kb.Until.Open(now) {
			return
		}
	}

	if p.Mode == cfg.Transition {
		physics.Velocity = math.Vec2{}
		anim.SetSpeed(0)
		rooms.SetRoomPos(p.TransitionPos)
		// Exits while the delay is still running, so the mode lasts a
		// single tick. See TestTransitionExitsOnFirstTick.
		if p.TransitionEndsAt.Open(now) {
			p.Mode = cfg.Idle
		}
	}

	p.DirHeld = heldDirection(in.Dir)

	if in.AttackPressed && p.AttackReadyAt.Reached(now) {
		p.Mode = cfg.Attack
		p.AttackEndsAt = gamemath.OpenWindow(now, cfg.Player.AttackDuration)
		p.AttackReadyAt = gamemath.OpenWindow(now, cfg.Player.AttackDelay)
	}
	if p.Mode == cfg.Attack && p.AttackEndsAt.Reached(now) {
		p.Mode = cfg.Idle
	}

	if p.Mode != cfg.Attack {
		if p.DirHeld == gamemath.NoDirection {
			p.Mode = cfg.Idle
		} else {
			p.FaceDir = p.DirHeld
			p.Mode = cfg.Move
		}
	}

	switch p.Mode {
	case cfg.Attack:
		physics.Velocity = math.Vec2{}
		anim.Play(cfg.ClipAttack, p.FaceDir, 0)
	case cfg.Move:
		physics.Velocity = gamemath.Scale(gamemath.DirectionVector(p.DirHeld), p.Speed())
		anim.Play(cfg.ClipWalk, p.FaceDir, 1)
	default:
		physics.Velocity = math.Vec2{}
		anim.Hold(cfg.ClipWalk, p.FaceDir)
	}
}

// heldDirection scans right, up, left, down and keeps the last one held.
func heldDirection(dir [4]bool) int {
	held := gamemath.NoDirection
	for i, down := range dir {
		if down {
			held = i
		}
	}
	return held
}

// ApplyPlayerDamage handles a hit on the player. Knockback pushes away from
// the object that made contact. It reports whether the hit landed.
func ApplyPlayerDamage(ctx TickContext, e *donburi.Entry, ev components.DamageEventData) bool {
	p := components.Player.Get(e)
	inv := components.Invincible.Get(e)
	if p.Mode == cfg.Dead || inv.On {
		return false
	}

	health := components.Health.Get(e)
	health.Current -= ev.Amount
	grantInvincibility(ctx.Now, cfg.Player.InvincibleDuration, inv)

	if health.Current <= 0 {
		killPlayer(ctx, e)
		return true
	}

	if ev.Knockback {
		kb := components.Knockback.Get(e)
		pos := components.Object.Get(e).Pos()
		dir := gamemath.SnapToAxis(gamemath.Sub(pos, ev.SourcePos))
		kb.Velocity = gamemath.Scale(dir, cfg.Player.KnockbackSpeed)
		kb.Until = gamemath.OpenWindow(ctx.Now, cfg.Player.KnockbackDuration)
		p.Mode = cfg.Knockback
		components.Physics.Get(e).Velocity = kb.Velocity
	}
	return true
}

// killPlayer puts the player into its terminal mode.
func killPlayer(ctx TickContext, e *donburi.Entry) {
	p := components.Player.Get(e)
	p.Mode = cfg.Dead
	p.DirHeld = gamemath.NoDirection

	health := components.Health.Get(e)
	if health.Current < 0 {
		health.Current = 0
	}

	components.Physics.Get(e).Velocity = math.Vec2{}
	components.Animation.Get(e).Play(cfg.ClipDead, p.FaceDir, 0)

	if !e.HasComponent(components.Death) {
		donburi.Add(e, components.Death, &components.DeathData{At: ctx.Now})
	}

	logging.Log.Infow("player died",
		"at", ctx.Now,
		"room_x", p.Room.X,
		"room_y", p.Room.Y,
		"keys", p.NumKeys,
	)
}

// playerRooms binds the player to the dungeon's room grid.
func playerRooms(ecs *ecs.ECS) (RoomPositioner, *components.PlayerData, bool) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	dungeonEntry, ok := components.Dungeon.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	p := components.Player.Get(playerEntry)
	grid := components.Dungeon.Get(dungeonEntry).Grid
	return newRoomService(grid, p, components.Object.Get(playerEntry)), p, true
}
