package systems

import (
	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads and hands the player its input
// snapshot for the tick. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollDevices(input)
	applyInput(ecs, input)
}

// PrimeInput polls once so keys already held when a scene starts do not read
// as fresh presses on its first tick.
func PrimeInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollDevices(input)
	holdCurrent(input)
}

// holdCurrent marks every held action as held on the previous tick too.
func holdCurrent(input *components.InputData) {
	input.Previous = input.Current
}

// pollDevices swaps buffers and records which actions are held now.
func pollDevices(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// applyInput copies the polled state into the player's snapshot and the
// host requests.
func applyInput(ecs *ecs.ECS, input *components.InputData) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		components.InputSnapshot.SetValue(playerEntry, SnapshotInput(input))
	}
	if hostEntry, ok := components.HostInput.First(ecs.World); ok {
		components.HostInput.SetValue(hostEntry, components.HostInputData{
			Save: input.Action(cfg.ActionSave).JustPressed,
			Load: input.Action(cfg.ActionLoad).JustPressed,
			Quit: input.Action(cfg.ActionQuit).JustPressed,
		})
	}
}

// SnapshotInput reduces polled actions to what the player controller reads.
func SnapshotInput(input *components.InputData) components.InputSnapshotData {
	var snap components.InputSnapshotData
	for i, action := range cfg.MoveActions {
		snap.Dir[i] = input.Action(action).Pressed
	}
	snap.AttackPressed = input.Action(cfg.ActionAttack).JustPressed
	return snap
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		archetypes.Input.Spawn(ecs)
	}
	entry, _ := components.Input.First(ecs.World)
	return components.Input.Get(entry)
}
