package components

import (
	cfg "github.com/automoto/gravrun/config"
	"github.com/yohamta/donburi"
)

// ActionState holds the derived state of a single action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds this frame's and last frame's action states (singleton
// component). Horizontal is -1, 0 or 1.
type InputData struct {
	Current    [cfg.ActionCount]bool
	Previous   [cfg.ActionCount]bool
	Horizontal float64
}

var Input = donburi.NewComponentType[InputData]()
