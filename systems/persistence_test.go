package systems

import (
	"testing"

	cfg "github.com/automoto/gravrun/config"
)

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    SavedSettings
		wantErr bool
	}{
		{"saved values", `{"sfxVolume":0.5,"muted":true}`, SavedSettings{SFXVolume: 0.5, Muted: true}, false},
		{"volume out of range", `{"sfxVolume":3}`, SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol}, false},
		{"negative volume", `{"sfxVolume":-1,"muted":true}`, SavedSettings{SFXVolume: cfg.Audio.DefaultSFXVol, Muted: true}, false},
		{"malformed", `{"sfxVolume":`, SavedSettings{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSettings([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestLoadSettingsWithoutPersistence(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	defer func() { gdataManager = saved }()

	s, err := LoadSettings()
	if s != nil || err != nil {
		t.Fatalf("expected nothing loaded, got %+v %v", s, err)
	}
	if err := SaveSettings(&SavedSettings{SFXVolume: 1}); err != nil {
		t.Fatalf("expected save to be a no-op, got %v", err)
	}
}
