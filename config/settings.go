package config

// SettingsConfig contains where and how player settings are stored
type SettingsConfig struct {
	AppName    string
	StorageKey string
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:    "gravrun",
		StorageKey: "settings",
	}
}
