package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ground = donburi.NewTag().SetName("Ground")
	Trap   = donburi.NewTag().SetName("Trap")
	Door   = donburi.NewTag().SetName("Door")
)
