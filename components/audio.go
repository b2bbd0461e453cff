package components

import (
	"github.com/automoto/gravrun/controller"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects until the audio system plays them
// (singleton component)
type AudioData struct {
	PendingSFX []controller.Clip
}

var Audio = donburi.NewComponentType[AudioData]()
