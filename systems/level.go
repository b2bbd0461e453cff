package systems

import (
	"github.com/automoto/gravrun/components"
	"github.com/yohamta/donburi/ecs"
)

// PendingScene returns the scene index requested this frame, if any.
func PendingScene(ecs *ecs.ECS) (int, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0, false
	}
	level := components.Level.Get(entry)
	return level.Pending, level.Request
}
