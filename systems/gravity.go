package systems

import (
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravitySwap flips world gravity on the gravity action and turns the
// player to match. It stays live while the player is dying.
func UpdateGravitySwap(ecs *ecs.ECS) {
	entry, ok := components.Gravity.First(ecs.World)
	if !ok {
		return
	}
	if !GetAction(components.Input.Get(entry), cfg.ActionGravity).JustPressed {
		return
	}

	field := components.Gravity.Get(entry).Field
	field.Toggle()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Player.Get(e).Rotation = field.Rotation()
	})
}
