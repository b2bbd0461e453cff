package systems

import (
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/yohamta/donburi/ecs"
)

// DefaultSettings returns the saved settings, or defaults when none exist.
func DefaultSettings() components.SettingsData {
	settings := components.SettingsData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		Debug:     cfg.Debug.Enabled,
	}
	if saved, err := LoadSettings(); err == nil && saved != nil {
		settings.SFXVolume = saved.SFXVolume
		settings.Muted = saved.Muted
	}
	return settings
}

// UpdateSettings toggles mute on the mute action and saves the change.
func UpdateSettings(ecs *ecs.ECS) {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	if !GetAction(components.Input.Get(entry), cfg.ActionMute).JustPressed {
		return
	}

	settings := components.Settings.Get(entry)
	settings.Muted = !settings.Muted
	_ = SaveSettings(&SavedSettings{
		SFXVolume: settings.SFXVolume,
		Muted:     settings.Muted,
	})
}
