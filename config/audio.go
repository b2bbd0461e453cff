package config

import "github.com/automoto/gravrun/controller"

// Sound effects the player controller asks for
const (
	ClipJump     controller.Clip = "jump"
	ClipMiniJump controller.Clip = "mini_jump"
	ClipDash     controller.Clip = "dash"
	ClipDeath    controller.Clip = "death"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps clips to file paths under the sound directory
type SoundConfig struct {
	Dir               string
	SFXPaths          map[controller.Clip]string
	VolumeMultipliers map[controller.Clip]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Dir: "audio",
		SFXPaths: map[controller.Clip]string{
			ClipJump:     "sfx/jump.wav",
			ClipMiniJump: "sfx/mini_jump.wav",
			ClipDash:     "sfx/dash.wav",
			ClipDeath:    "sfx/death.wav",
		},
		VolumeMultipliers: map[controller.Clip]float64{
			ClipMiniJump: 0.8,
		},
	}
}
