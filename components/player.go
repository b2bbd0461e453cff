package components

import (
	"github.com/automoto/gravrun/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *controller.Controller

	// Transform
	ScaleX   float64 // 1 facing right, -1 mirrored
	Rotation float64 // degrees

	ColliderEnabled bool

	// Trigger volumes overlapped last frame, for enter detection
	Touching map[*resolv.Object]bool
}

var Player = donburi.NewComponentType[PlayerData]()
