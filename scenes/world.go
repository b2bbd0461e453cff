package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/gravity"
	"github.com/automoto/gravrun/levels"
	"github.com/automoto/gravrun/systems"
	"github.com/automoto/gravrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Shared is the state that outlives a single scene.
type Shared struct {
	Levels   []*levels.Level
	Gravity  *gravity.Field
	Settings components.SettingsData
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	shared       Shared
	index        int
	once         sync.Once
}

// NewPlatformerScene creates the scene for level index. The world is built
// on the first Update.
func NewPlatformerScene(sc SceneChanger, shared Shared, index int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, shared: shared, index: index}
}

func (ps *PlatformerScene) Index() int {
	return ps.index
}

// Reload returns a fresh copy of this scene carrying the current settings.
func (ps *PlatformerScene) Reload() *PlatformerScene {
	return NewPlatformerScene(ps.sceneChanger, ps.currentShared(), ps.index)
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// Scene loads requested during the frame take effect once it is over.
	if index, ok := systems.PendingScene(ps.ecs); ok {
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.currentShared(), index))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) currentShared() Shared {
	shared := ps.shared
	if ps.ecs == nil {
		return shared
	}
	if entry, ok := components.Settings.First(ps.ecs.World); ok {
		shared.Settings = *components.Settings.Get(entry)
	}
	return shared
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateGravitySwap)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateFade)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	ps.ecs = ecs

	// Level and space come first; the player's controller needs both.
	factory.CreateLevel(ps.ecs, ps.shared.Levels, ps.index)
	level := ps.shared.Levels[ps.index]
	factory.CreateSpace(ps.ecs, level.Width, level.Height, cfg.C.CellSize, cfg.C.CellSize)
	factory.CreateSession(ps.ecs, ps.shared.Gravity, ps.shared.Settings)

	for _, r := range level.Ground {
		factory.CreateGround(ps.ecs, r)
	}
	for _, r := range level.Traps {
		factory.CreateTrap(ps.ecs, r)
	}
	for _, r := range level.NextDoors {
		factory.CreateDoor(ps.ecs, r, cfg.LayerNextLevel)
	}
	for _, r := range level.PreviousDoors {
		factory.CreateDoor(ps.ecs, r, cfg.LayerPreviousLevel)
	}

	player := factory.CreatePlayer(ps.ecs, level.Spawn.X, level.Spawn.Y, ps.shared.Gravity.Rotation())
	if _, err := systems.AttachController(ps.ecs, player); err != nil {
		panic("failed to create player controller: " + err.Error())
	}
}
