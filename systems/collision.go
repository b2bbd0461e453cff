package systems

import (
	"math"

	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/controller"
	"github.com/automoto/gravrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// triggerTags maps resolv layers of trigger volumes to controller tags.
var triggerTags = map[string]controller.Tag{
	cfg.LayerTrap:          controller.TagTrap,
	cfg.LayerNextLevel:     controller.TagNextLevel,
	cfg.LayerPreviousLevel: controller.TagPreviousLevel,
}

// UpdateCollisions moves players against the ground and reports trigger
// volumes they entered this frame.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := cfg.C.FrameDuration().Seconds()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		if !physics.Frozen {
			// Screen space has Y down.
			dx := physics.Velocity.X * dt
			dy := -physics.Velocity.Y * dt

			if player.ColliderEnabled {
				resolveHorizontal(physics, obj, dx)
				resolveVertical(physics, obj, dy)
			} else {
				obj.X += dx
				obj.Y += dy
			}
		}

		if player.ColliderEnabled {
			for _, tag := range enteredTriggers(player, obj) {
				if player.Controller != nil {
					player.Controller.OnTriggerEnter(tag)
				}
			}
		}
	})
}

func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	for _, solid := range solidsAt(obj, dx, 0) {
		if dx > 0 {
			dx = math.Min(dx, math.Max(solid.X-(obj.X+obj.W), 0))
		} else {
			dx = math.Max(dx, math.Min(solid.X+solid.W-obj.X, 0))
		}
		physics.Velocity.X = 0
	}

	obj.X += dx
}

func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}

	for _, solid := range solidsAt(obj, 0, dy) {
		if dy > 0 {
			dy = math.Min(dy, math.Max(solid.Y-(obj.Y+obj.H), 0))
		} else {
			dy = math.Max(dy, math.Min(solid.Y+solid.H-obj.Y, 0))
		}
		physics.Velocity.Y = 0
	}

	obj.Y += dy
}

// solidsAt returns ground objects overlapping obj once moved by (dx, dy).
func solidsAt(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	check := obj.Check(dx, dy, cfg.LayerGround)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, other := range check.ObjectsByTags(cfg.LayerGround) {
		if overlaps(obj.X+dx, obj.Y+dy, obj.W, obj.H, other) {
			hits = append(hits, other)
		}
	}
	return hits
}

func overlaps(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W && x+w > other.X && y < other.Y+other.H && y+h > other.Y
}

// enteredTriggers updates the set of overlapped trigger volumes and returns
// the tags of those that were not overlapped last frame.
func enteredTriggers(player *components.PlayerData, obj *resolv.Object) []controller.Tag {
	touching := map[*resolv.Object]bool{}
	var entered []controller.Tag

	if check := obj.Check(0, 0, cfg.LayerTrap, cfg.LayerNextLevel, cfg.LayerPreviousLevel); check != nil {
		for _, other := range check.Objects {
			if !overlaps(obj.X, obj.Y, obj.W, obj.H, other) {
				continue
			}
			touching[other] = true
			if player.Touching[other] {
				continue
			}
			for layer, tag := range triggerTags {
				if other.HasTags(layer) {
					entered = append(entered, tag)
				}
			}
		}
	}

	player.Touching = touching
	return entered
}
