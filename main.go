package main

import (
	"flag"
	"image"
	"log"
	"slices"

	"github.com/automoto/delver/assets"
	"github.com/automoto/delver/config"
	"github.com/automoto/delver/fonts"
	"github.com/automoto/delver/logging"
	"github.com/automoto/delver/scenes"
	"github.com/automoto/delver/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(dungeon string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDungeonScene(g, dungeon)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	dungeon := flag.String("dungeon", assets.DefaultDungeon, "dungeon map to play")
	flag.StringVar(&config.Debug.LogPath, "log", "", "log file path (rotated); empty logs to stderr")
	flag.BoolVar(&config.Debug.Verbose, "debug", false, "enable debug logging")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", false, "draw collision boxes")
	flag.Parse()

	if err := logging.Init(config.Debug.LogPath, config.Debug.Verbose); err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer logging.Sync()

	names, err := assets.DungeonNames()
	if err != nil {
		logging.Log.Fatalw("list dungeons", "err", err)
	}
	if !slices.Contains(names, *dungeon) {
		logging.Log.Fatalw("unknown dungeon", "dungeon", *dungeon, "available", names)
	}

	if *tuning != "" {
		if err := config.LoadOverridesFile(*tuning); err != nil {
			logging.Log.Fatalw("load tuning", "err", err)
		}
		logging.Log.Infow("tuning loaded", "path", *tuning)
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		logging.Log.Fatalw("load fonts", "err", err)
	}

	if err := systems.InitPersistence(); err != nil {
		logging.Log.Warnw("quick save disabled", "err", err)
	}

	ebiten.SetWindowSize(config.C.Width*3, config.C.Height*3)
	ebiten.SetWindowTitle("Delver")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(*dungeon)); err != nil {
		logging.Log.Errorw("game exited", "err", err)
	}
}
