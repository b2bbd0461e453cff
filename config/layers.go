package config

import "github.com/yohamta/donburi/ecs"

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Collision layers, used as resolv tags
const (
	LayerGround        = "ground"
	LayerPlayer        = "player"
	LayerTrap          = "trap"
	LayerNextLevel     = "next_level"
	LayerPreviousLevel = "previous_level"
)
