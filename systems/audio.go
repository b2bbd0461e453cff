package systems

import (
	"log"
	"sync"

	"github.com/automoto/gravrun/assets"
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/controller"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	missingClips       = map[controller.Clip]bool{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, assets.SoundFS())
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first
// play. Clips that fail to load are reported once and then skipped.
func PreloadAllSFX() {
	initGlobalAudio()

	for clip, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.Preload(path); err != nil {
			log.Printf("Warning: sound %s unavailable: %v", clip, err)
			missingClips[clip] = true
		}
	}
}

// UpdateAudio plays the sound effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	volume := 0.0
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		settings := components.Settings.Get(settingsEntry)
		if !settings.Muted {
			volume = settings.SFXVolume
		}
	}

	for _, clip := range audioData.PendingSFX {
		playSFX(clip, volume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(clip controller.Clip, volume float64) {
	if volume <= 0 || missingClips[clip] {
		return
	}
	initGlobalAudio()

	path, ok := cfg.Sound.SFXPaths[clip]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: could not play %s: %v", clip, err)
		missingClips[clip] = true
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[clip]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}
