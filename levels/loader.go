package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files
const (
	GroupGround        = "Ground"
	GroupTrap          = "Trap"
	GroupNextLevel     = "NextLevel"
	GroupPreviousLevel = "PreviousLevel"
	GroupPlayerSpawn   = "PlayerSpawn"

	propRespawn = "respawn"
)

var (
	ErrNoSpawn           = errors.New("levels: no player spawn point")
	ErrRespawnOutOfRange = errors.New("levels: respawn target out of range")
)

// Load parses a TMX file. index is the scene index the level will have; it
// is the respawn target unless a trap names another one.
func Load(fsys fs.FS, tmxPath string, index int) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:    strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:   levelMap.Width * levelMap.TileWidth,
		Height:  levelMap.Height * levelMap.TileHeight,
		Respawn: index,
	}

	spawnFound := false
	respawnSet := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}

			switch og.Name {
			case GroupGround:
				level.Ground = append(level.Ground, r)
			case GroupTrap:
				level.Traps = append(level.Traps, r)
				if raw := o.Properties.GetString(propRespawn); raw != "" && !respawnSet {
					n, err := strconv.Atoi(raw)
					if err != nil {
						return nil, fmt.Errorf("%s: trap %d: bad respawn %q: %w", tmxPath, o.ID, raw, err)
					}
					level.Respawn = n
					respawnSet = true
				}
			case GroupNextLevel:
				level.NextDoors = append(level.NextDoors, r)
			case GroupPreviousLevel:
				level.PreviousDoors = append(level.PreviousDoors, r)
			case GroupPlayerSpawn:
				if !spawnFound {
					level.Spawn = Point{X: o.X, Y: o.Y}
					spawnFound = true
				}
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	return level, nil
}

// LoadAll loads every .tmx file in dir, ordered by file name. A level's
// position in the returned slice is its scene index.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for i, p := range matches {
		level, err := Load(fsys, p, i)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	for _, level := range levels {
		if level.Respawn < 0 || level.Respawn >= len(levels) {
			return nil, fmt.Errorf("%s: respawn %d not in [0,%d): %w", level.Name, level.Respawn, len(levels), ErrRespawnOutOfRange)
		}
	}
	return levels, nil
}
