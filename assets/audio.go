package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/gravrun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// SoundFS is the embedded sound directory. Paths in config.Sound.SFXPaths are
// relative to it.
func SoundFS() fs.FS {
	sub, err := fs.Sub(audioFS, config.Sound.Dir)
	if err != nil {
		panic("invalid sound directory " + config.Sound.Dir + ": " + err.Error())
	}
	return sub
}

// AudioLoader decodes sound effects from fsys and caches the decoded PCM.
type AudioLoader struct {
	context *audio.Context
	fsys    fs.FS
	cache   map[string][]byte
}

// NewAudioLoader creates a new audio loader reading from fsys.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		context: ctx,
		fsys:    fsys,
		cache:   make(map[string][]byte),
	}
}

// Preload decodes a sound effect without playing it.
func (l *AudioLoader) Preload(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new player for a sound effect. SFX are cached as decoded
// bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	pcm, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if pcm, ok := l.cache[path]; ok {
		return pcm, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	l.cache[path] = pcm
	return pcm, nil
}
