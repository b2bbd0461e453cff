package factory

import (
	"github.com/automoto/gravrun/archetypes"
	"github.com/automoto/gravrun/components"
	"github.com/automoto/gravrun/levels"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for all[index]. The caller checks the
// index.
func CreateLevel(ecs *ecs.ECS, all []*levels.Level, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Levels: all,
		Index:  index,
	})
	return level
}
