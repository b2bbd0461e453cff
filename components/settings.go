package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime settings (singleton component)
type SettingsData struct {
	SFXVolume float64
	Muted     bool
	Debug     bool
}

var Settings = donburi.NewComponentType[SettingsData]()
