package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/automoto/gravrun/assets"
	"github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/gravity"
	"github.com/automoto/gravrun/scenes"
	"github.com/automoto/gravrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene   Scene
	gravity *gravity.Field
	watcher *config.Watcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(startLevel int) (*Game, error) {
	all, err := assets.LoadLevels()
	if err != nil {
		return nil, err
	}
	if startLevel < 0 || startLevel >= len(all) {
		return nil, fmt.Errorf("start level %d out of range, %d levels loaded", startLevel, len(all))
	}

	systems.PreloadAllSFX()

	g := &Game{gravity: gravity.NewField(config.Physics.Gravity)}
	g.scene = scenes.NewPlatformerScene(g, scenes.Shared{
		Levels:   all,
		Gravity:  g.gravity,
		Settings: systems.DefaultSettings(),
	}, startLevel)

	return g, nil
}

func (g *Game) Update() error {
	g.pollTuning()
	g.scene.Update()
	return nil
}

// pollTuning applies a changed tuning file and restarts the current level.
func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}

	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		tuning, err := config.LoadTuning(path)
		if err != nil {
			log.Printf("Warning: keeping previous tuning: %v", err)
			return
		}
		tuning.Apply()
		g.gravity.SetStrength(config.Physics.Gravity)
		if ps, ok := g.scene.(*scenes.PlatformerScene); ok {
			g.scene = ps.Reload()
		}
		log.Printf("Reloaded tuning from %s", path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Warning: tuning watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "draw collision boxes and controller state")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding player, physics and death values")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "reload the tuning file when it changes")
	flag.IntVar(&config.Debug.StartLevel, "level", 0, "level index to start on")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		tuning, err := config.LoadTuning(config.Debug.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("gravrun")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence before the first scene reads saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame(config.Debug.StartLevel)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if config.Debug.Watch && config.Debug.TuningPath != "" {
		w, err := config.NewWatcher(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.TuningPath, err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
