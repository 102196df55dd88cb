package systems

import (
	"image/color"

	"github.com/automoto/delver/components"
	cfg "github.com/automoto/delver/config"
	"github.com/automoto/delver/shared/gamemath"
	"github.com/automoto/delver/systems/factory"
	"github.com/automoto/delver/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// view maps world units to screen pixels for one frame. World +Y is up, so
// the Y axis is flipped against the bottom of the screen.
type view struct {
	origin math.Vec2 // world position of the screen's bottom-left corner
	scale  float64
	height float64
	width  float64
}

func newView(camera *components.CameraData, screen *ebiten.Image) view {
	return view{
		origin: math.Vec2{X: camera.Position.X - 0.5, Y: camera.Position.Y - 0.5},
		scale:  float64(cfg.C.TileSize),
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}
}

// rect returns the screen rectangle for a world-space box.
func (v view) rect(o *resolv.Object) (x, y, w, h float32) {
	b := components.WorldRect(o)
	sx := (b.X - v.origin.X) * v.scale
	sy := v.height - (b.Y+b.H-v.origin.Y)*v.scale
	return float32(sx), float32(sy), float32(b.W * v.scale), float32(b.H * v.scale)
}

func (v view) visible(o *resolv.Object) bool {
	x, y, w, h := v.rect(o)
	return x+w >= 0 && y+h >= 0 && float64(x) <= v.width && float64(y) <= v.height
}

func (v view) fill(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	if !v.visible(o) {
		return
	}
	x, y, w, h := v.rect(o)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	return newView(components.Camera.Get(cameraEntry), screen), true
}

// DrawDungeon renders the room on screen: floor, walls, pickups, enemies,
// the player and the swinging sword, back to front.
func DrawDungeon(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	screen.Fill(cfg.Floor)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		v.fill(screen, components.Object.Get(e).Object, cfg.Stone)
	})

	now := tickContext(ecs.World).Now
	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		c := pickupColor(pickup.Kind)
		if !pickup.ActiveAt.Reached(now) {
			c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
		}
		v.fill(screen, components.Object.Get(e).Object, c)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawActor(screen, v, e)
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		drawActor(screen, v, playerEntry)
		drawFacing(screen, v, playerEntry)
	}

	tags.Sword.Each(ecs.World, func(e *donburi.Entry) {
		if components.Sword.Get(e).Active {
			v.fill(screen, components.Object.Get(e).Object, cfg.White)
		}
	})
}

// drawActor fills the body with its tint. Odd animation frames draw a pixel
// lower so walking reads on screen.
func drawActor(screen *ebiten.Image, v view, e *donburi.Entry) {
	o := components.Object.Get(e).Object
	if !v.visible(o) {
		return
	}
	x, y, w, h := v.rect(o)
	if anim := components.Animation.Get(e); anim.Current != nil && anim.Current.Frame()%2 == 1 {
		y++
	}
	vector.FillRect(screen, x, y, w, h, components.Tint.Get(e).Current, false)
}

// drawFacing marks the edge of the player's body it is facing.
func drawFacing(screen *ebiten.Image, v view, e *donburi.Entry) {
	facing := components.Player.Get(e).FaceDir
	o := components.Object.Get(e).Object
	x, y, w, h := v.rect(o)
	const mark = 2
	switch facing {
	case gamemath.DirRight:
		vector.FillRect(screen, x+w-mark, y, mark, h, cfg.Stone, false)
	case gamemath.DirLeft:
		vector.FillRect(screen, x, y, mark, h, cfg.Stone, false)
	case gamemath.DirUp:
		vector.FillRect(screen, x, y, w, mark, cfg.Stone, false)
	case gamemath.DirDown:
		vector.FillRect(screen, x, y+h-mark, w, mark, cfg.Stone, false)
	}
}

func pickupColor(kind string) color.RGBA {
	switch kind {
	case factory.PickupKey:
		return cfg.Yellow
	case factory.PickupHealth:
		return cfg.LightRed
	default:
		return cfg.Green
	}
}
