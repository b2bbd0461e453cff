package components

import (
	"github.com/automoto/gravrun/levels"
	"github.com/yohamta/donburi"
)

// LevelData tracks the loaded levels and any scene change asked for this
// frame. The change is applied by the scene after the systems have run.
type LevelData struct {
	Levels  []*levels.Level
	Index   int
	Pending int
	Request bool
}

// Current is the level the scene was built from.
func (l *LevelData) Current() *levels.Level {
	return l.Levels[l.Index]
}

var Level = donburi.NewComponentType[LevelData]()
