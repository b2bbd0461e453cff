package factory

import (
	"github.com/automoto/gravrun/archetypes"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/levels"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGround(ecs *ecs.ECS, r levels.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, cfg.LayerGround)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, ground, obj)

	return ground
}

// CreateTrap creates a hazard volume that starts the death sequence when the
// player enters it.
func CreateTrap(ecs *ecs.ECS, r levels.Rect) *donburi.Entry {
	trap := archetypes.Trap.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, cfg.LayerTrap)
	addToSpace(ecs, trap, obj)

	return trap
}

// CreateDoor creates a level transition volume. layer is
// cfg.LayerNextLevel or cfg.LayerPreviousLevel.
func CreateDoor(ecs *ecs.ECS, r levels.Rect, layer string) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, layer)
	addToSpace(ecs, door, obj)

	return door
}
