package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	dungeon      string
	keys         int
	once         sync.Once
}

// NewGameOverScene creates a game over screen for a run that ended holding
// keys. Retry restarts the same dungeon.
func NewGameOverScene(sc SceneChanger, dungeon string, keys int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, dungeon: dungeon, keys: keys}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	retry := func() interface{} {
		return NewDungeonScene(gs.sceneChanger, gs.dungeon)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, retry, gs.sceneChanger.Quit))

	gs.ecs.AddRenderer(archetypes.Default, systems.DrawGameOver)

	systems.GetOrCreateGameOver(gs.ecs).KeysHeld = gs.keys
	// The attack key doubles as menu select.
	systems.PrimeInput(gs.ecs)
}
