package factory

import (
	"github.com/automoto/gravrun/archetypes"
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). The controller is
// attached separately once the scene's services exist.
func CreatePlayer(ecs *ecs.ECS, x, y, rotation float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)

	obj := resolv.NewObject(x-w/2, y-h, w, h, cfg.LayerPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		ScaleX:          cfg.DirectionRight,
		Rotation:        rotation,
		ColliderEnabled: true,
		Touching:        map[*resolv.Object]bool{},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		GravityScale: 1,
		Mass:         cfg.Player.Mass,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Bools:    map[string]bool{},
		Triggers: map[string]int{},
		State:    "idle",
	})

	return player
}
