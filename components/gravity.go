package components

import (
	"github.com/automoto/gravrun/gravity"
	"github.com/yohamta/donburi"
)

// GravityData points at the game-wide gravity field (singleton component)
type GravityData struct {
	Field *gravity.Field
}

var Gravity = donburi.NewComponentType[GravityData]()
