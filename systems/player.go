package systems

import (
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one controller tick per player.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := cfg.C.FrameDuration()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}
		player.Controller.Tick(dt)
	})
}
