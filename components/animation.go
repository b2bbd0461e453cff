package components

import "github.com/yohamta/donburi"

// AnimationData mirrors the animator parameters the controller sets.
// Triggers count down in frames; State is derived each frame for drawing.
type AnimationData struct {
	Bools    map[string]bool
	Triggers map[string]int
	Dead     bool
	State    string
}

var Animation = donburi.NewComponentType[AnimationData]()
