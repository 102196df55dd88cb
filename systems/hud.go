package systems

import (
	"fmt"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/fonts"
	"github.com/automoto/delver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders one pip per hit point and the key count in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	p := components.Player.Get(playerEntry)

	m, size, gap := cfg.HUD.Margin, cfg.HUD.HeartSize, cfg.HUD.HeartGap
	for i := 0; i < hp.Max; i++ {
		c := cfg.HUD.HeartBgColor
		if i < hp.Current {
			c = cfg.HUD.HeartColor
		}
		x := m + float64(i)*(size+gap)
		vector.FillRect(screen, float32(x), float32(m), float32(size), float32(size), c, false)
	}

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	label := fmt.Sprintf("KEYS %d", p.NumKeys)
	y := m + size + gap
	vector.FillRect(screen, float32(m), float32(y), float32(len(label))*float32(cfg.HUD.FontSize)*0.6+4, float32(cfg.HUD.FontSize)+4, cfg.HUD.TextBgColor, false)
	text.Draw(screen, label, fonts.Regular.Get(), int(m)+2, int(y+cfg.HUD.FontSize), cfg.HUD.KeyColor)
}
