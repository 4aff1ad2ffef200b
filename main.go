package main

import (
	"flag"
	"log"

	"github.com/automoto/torch/config"
	"github.com/automoto/torch/scenes"
	"github.com/automoto/torch/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.DrawHitboxes, "hitboxes", false, "Draw hitboxes and hurt regions")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML frame data file")
	flag.BoolVar(&config.Debug.WatchTuning, "watch", false, "Reload the tuning file when it changes")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Torch")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence before the scene reads saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	arena := scenes.NewArenaScene()
	runErr := ebiten.RunGame(NewGame(arena))
	if err := arena.Close(); err != nil {
		log.Printf("Warning: Could not stop tuning watcher: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
