package systems

import (
	"github.com/automoto/gravrun/components"
	"github.com/automoto/gravrun/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// triggerFrames is how long a one-shot trigger stays visible.
const triggerFrames = 12

// UpdateAnimation derives a display state from the animator parameters and
// ages one-shot triggers.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.State = animationState(anim)

		for name, frames := range anim.Triggers {
			if frames <= 1 {
				delete(anim.Triggers, name)
				continue
			}
			anim.Triggers[name] = frames - 1
		}
	})
}

func animationState(anim *components.AnimationData) string {
	switch {
	case anim.Dead:
		return controller.AnimDie
	case anim.Bools[controller.AnimDash]:
		return controller.AnimDash
	case anim.Triggers[controller.AnimJump] > 0:
		return controller.AnimJump
	case !anim.Bools[controller.AnimGrounded]:
		return "air"
	case anim.Bools[controller.AnimRun]:
		return controller.AnimRun
	}
	return "idle"
}
