package archetypes

import (
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Trap = newArchetype(
		tags.Trap,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Input,
		components.Audio,
		components.Gravity,
		components.Settings,
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
