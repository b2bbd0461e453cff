package assets

import (
	"embed"

	"github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/levels"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// LoadLevels parses the embedded levels in scene order.
func LoadLevels() ([]*levels.Level, error) {
	return levels.LoadAll(levelFS, config.C.LevelsDir)
}
