package systems

import (
	"math"

	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies world gravity to every unfrozen body.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := components.Gravity.First(ecs.World)
	if !ok {
		return
	}
	g := components.Gravity.Get(entry).Field.Vector()
	dt := cfg.C.FrameDuration().Seconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Frozen {
			return
		}

		physics.Velocity.X += g.X * physics.GravityScale * dt
		physics.Velocity.Y += g.Y * physics.GravityScale * dt

		limit := cfg.Physics.MaxFallSpeed
		physics.Velocity.Y = math.Max(math.Min(physics.Velocity.Y, limit), -limit)
	})
}
