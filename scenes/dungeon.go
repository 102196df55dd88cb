package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/assets"
	"github.com/automoto/delver/components"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/systems"
	"github.com/automoto/delver/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DungeonScene runs the simulation for one dungeon map.
type DungeonScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	dungeon      string
	once         sync.Once
}

// NewDungeonScene creates a scene that plays the named dungeon.
func NewDungeonScene(sc SceneChanger, dungeon string) *DungeonScene {
	return &DungeonScene{sceneChanger: sc, dungeon: dungeon}
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	ds.handleHostInput()

	if keys, ok := systems.DeathSettled(ds.ecs); ok {
		logging.Log.Infow("game over", "dungeon", ds.dungeon, "keys", keys)
		ds.sceneChanger.ChangeScene(NewGameOverScene(ds.sceneChanger, ds.dungeon, keys))
	}
}

// handleHostInput serves the requests the simulation leaves to the scene.
func (ds *DungeonScene) handleHostInput() {
	hostEntry, ok := components.HostInput.First(ds.ecs.World)
	if !ok {
		return
	}
	host := components.HostInput.Get(hostEntry)

	switch {
	case host.Quit:
		ds.sceneChanger.Quit()
	case host.Save:
		store := systems.SaveStore()
		if store == nil {
			logging.Log.Warnw("save skipped, persistence unavailable")
			return
		}
		if err := systems.SaveGame(ds.ecs, store); err != nil {
			logging.Log.Errorw("save failed", "err", err)
		}
	case host.Load:
		store := systems.SaveStore()
		if store == nil {
			logging.Log.Warnw("load skipped, persistence unavailable")
			return
		}
		err := systems.LoadGame(ds.ecs, store)
		if errors.Is(err, systems.ErrNoSave) {
			logging.Log.Infow("nothing to load")
		} else if err != nil {
			logging.Log.Errorw("load failed", "err", err)
		}
	}
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DungeonScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: each system reads what the previous ones wrote this tick.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateRoomTransitions)
	ecs.AddSystem(systems.UpdateSword)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAnimations)

	ecs.AddRenderer(archetypes.Default, systems.DrawDungeon)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	ds.ecs = ecs

	level, err := assets.LoadDungeon(ds.dungeon)
	if err != nil {
		logging.Log.Fatalw("load dungeon", "dungeon", ds.dungeon, "err", err)
	}
	if _, err := factory.PopulateDungeon(ds.ecs, level); err != nil {
		logging.Log.Fatalw("populate dungeon", "dungeon", ds.dungeon, "err", err)
	}
	// Retry from game over arrives with the select key, which is also attack,
	// still held.
	systems.PrimeInput(ds.ecs)

	logging.Log.Infow("dungeon ready", "dungeon", ds.dungeon, "enemies", len(level.Enemies), "pickups", len(level.Pickups))
}
