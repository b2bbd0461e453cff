package components

import (
	"github.com/automoto/gravrun/controller"
	"github.com/yohamta/donburi"
)

// PhysicsData is a simple rigid body. Velocity is in px/s with positive
// Y up; the collision system converts it to screen space when moving.
type PhysicsData struct {
	Velocity     controller.Vector
	GravityScale float64
	Mass         float64
	Frozen       bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
