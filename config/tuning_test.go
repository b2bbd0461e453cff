package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTuningKeepsMissingKeys(t *testing.T) {
	got, err := ParseTuning([]byte("player:\n  speed: 200\n"))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}

	if got.Player.Speed != 200 {
		t.Fatalf("expected speed 200, got %v", got.Player.Speed)
	}
	if got.Player.JumpSpeed != Player.JumpSpeed {
		t.Fatalf("expected jump speed to stay %v, got %v", Player.JumpSpeed, got.Player.JumpSpeed)
	}
	if got.Physics != Physics || got.Death != Death {
		t.Fatalf("expected untouched sections to keep defaults")
	}
}

func TestParseTuningDurations(t *testing.T) {
	data := []byte(`
player:
  dash_time: 350ms
death:
  hit_pause: 50ms
  respawn_delay: 2s
`)
	got, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}

	if got.Player.DashTime != 350*time.Millisecond {
		t.Fatalf("expected dash time 350ms, got %v", got.Player.DashTime)
	}
	if got.Death.HitPause != 50*time.Millisecond || got.Death.RespawnDelay != 2*time.Second {
		t.Fatalf("unexpected death timings %+v", got.Death)
	}
	if got.Death.SoundDelay != Death.SoundDelay {
		t.Fatalf("expected sound delay to keep default")
	}
}

func TestParseTuningRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero speed", "player:\n  speed: 0\n"},
		{"negative speed", "player:\n  speed: -10\n"},
		{"negative dash time", "player:\n  dash_time: -1s\n"},
		{"zero gravity", "physics:\n  gravity: 0\n"},
		{"zero mass", "player:\n  mass: 0\n"},
		{"empty collision box", "player:\n  collision_width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestParseTuningRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseTuning([]byte("player: [")); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestLoadTuningAndApply(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 900\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	tuning.Apply()

	if Physics.Gravity != 900 {
		t.Fatalf("expected gravity 900, got %v", Physics.Gravity)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestControllerConfigIsValid(t *testing.T) {
	if err := ControllerConfig().Validate(); err != nil {
		t.Fatalf("default controller config: %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(path, []byte("player:\n  speed: 10\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tuning.yaml" {
			t.Fatalf("expected tuning.yaml event, got %s", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
}

func TestWatcherReportsBurstAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := newWatcher(path, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("newWatcher: %v", err)
	}
	defer w.Close()

	arrived := make(chan time.Time, 4)
	go func() {
		for range w.Events {
			arrived <- time.Now()
		}
	}()

	// An editor truncating and then writing the file.
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	final := []byte("player:\n  speed: 10\n")
	if err := os.WriteFile(path, final, 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	lastWrite := time.Now()

	select {
	case at := <-arrived:
		if at.Before(lastWrite) {
			t.Fatalf("expected the change reported after the last write, got it %v early", lastWrite.Sub(at))
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(data) != string(final) {
			t.Fatalf("expected final contents at report time, got %q", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}

	select {
	case <-arrived:
		t.Fatalf("expected a single report for the burst")
	case <-time.After(400 * time.Millisecond):
	}
}
