package systems

import (
	"fmt"

	"github.com/automoto/delver/archetypes"
	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system. retry builds the scene
// to restart into; quit is called when the player leaves.
func NewUpdateGameOver(sceneChanger SceneChanger, retry func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if input.Action(cfg.ActionMenuUp).JustPressed {
			gameOver.Move(-1)
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			gameOver.Move(1)
		}

		if input.Action(cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(retry())
			case components.GameOverQuit:
				quit()
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "YOU DIED"
	titleX := int((width - float64(text.BoundString(titleFont, title).Dx())) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	menuFont := fonts.Menu.Get()
	keys := fmt.Sprintf("keys found: %d", gameOver.KeysHeld)
	keysX := int((width - float64(text.BoundString(menuFont, keys).Dx())) / 2)
	text.Draw(screen, keys, menuFont, keysX, int(cfg.GameOver.TitleY)+20, cfg.GameOver.TextColorNormal)

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		x := int((width - float64(text.BoundString(menuFont, option).Dx())) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := archetypes.GameOver.Spawn(e)
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// DeathSettled reports whether the player died long enough ago for the game
// over screen, and how many keys they were carrying.
func DeathSettled(e *ecs.ECS) (keys int, ok bool) {
	playerEntry, found := components.Player.First(e.World)
	if !found || !playerEntry.HasComponent(components.Death) {
		return 0, false
	}
	died := components.Death.Get(playerEntry).At
	if tickContext(e.World).Now-died < cfg.GameOver.Delay {
		return 0, false
	}
	return components.Player.Get(playerEntry).NumKeys, true
}
