package controller

import (
	"errors"
	"testing"
	"time"
)

func TestNewRejectsMissingDependencies(t *testing.T) {
	full := func() Deps {
		j := &journal{}
		return Deps{
			Body:     &fakeBody{j: j},
			Collider: &fakeCollider{j: j},
			World:    &fakeWorld{},
			Input:    &fakeInput{},
			Animator: &fakeAnimator{j: j, bools: map[string]bool{}},
			Audio:    &fakeAudio{j: j},
			Scenes:   &fakeScenes{j: j},
			Gravity:  &fakeGravity{j: j},
			Trap:     fakeTrap{},
		}
	}

	tests := []struct {
		name  string
		strip func(*Deps)
	}{
		{"body", func(d *Deps) { d.Body = nil }},
		{"collider", func(d *Deps) { d.Collider = nil }},
		{"world", func(d *Deps) { d.World = nil }},
		{"input", func(d *Deps) { d.Input = nil }},
		{"animator", func(d *Deps) { d.Animator = nil }},
		{"audio", func(d *Deps) { d.Audio = nil }},
		{"scenes", func(d *Deps) { d.Scenes = nil }},
		{"gravity", func(d *Deps) { d.Gravity = nil }},
		{"trap", func(d *Deps) { d.Trap = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full()
			tt.strip(&deps)

			ctrl, err := New(DefaultConfig(), deps)
			if ctrl != nil {
				t.Fatalf("expected no controller, got %v", ctrl)
			}
			if !errors.Is(err, ErrMissingDependency) {
				t.Fatalf("expected ErrMissingDependency, got %v", err)
			}
			var depErr *DependencyError
			if !errors.As(err, &depErr) || depErr.Name != tt.name {
				t.Fatalf("expected dependency error naming %q, got %v", tt.name, err)
			}
		})
	}

	if _, err := New(DefaultConfig(), full()); err != nil {
		t.Fatalf("full deps: unexpected error %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero dash time", func(c *Config) { c.DashTime = 0 }, true},
		{"zero speed", func(c *Config) { c.Speed = 0 }, false},
		{"negative speed", func(c *Config) { c.Speed = -1 }, false},
		{"zero jump speed", func(c *Config) { c.JumpSpeed = 0 }, false},
		{"negative dash time", func(c *Config) { c.DashTime = -time.Millisecond }, false},
		{"negative dash distance", func(c *Config) { c.DashDistance = -1 }, false},
		{"zero check radius", func(c *Config) { c.CheckRadius = 0 }, false},
		{"negative death wait", func(c *Config) { c.Death.SoundDelay = -time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 0

	if _, err := New(cfg, Deps{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGroundCheckRunsEveryTick(t *testing.T) {
	cfg := DefaultConfig()
	r := newRig(t, cfg)

	r.world.grounded = false
	r.tick(0)
	if r.ctrl.State().Grounded {
		t.Fatalf("expected airborne")
	}

	r.world.grounded = true
	r.tick(0)
	if !r.ctrl.State().Grounded {
		t.Fatalf("expected grounded")
	}

	if r.world.queries != 2 {
		t.Fatalf("expected 2 ground queries, got %d", r.world.queries)
	}
	if r.world.radius != cfg.CheckRadius {
		t.Fatalf("expected radius %v, got %v", cfg.CheckRadius, r.world.radius)
	}
	if len(r.world.layers) != 1 || r.world.layers[0] != "ground" {
		t.Fatalf("expected ground layers, got %v", r.world.layers)
	}
}

func TestStateReportsGravityOrientation(t *testing.T) {
	r := newRig(t, DefaultConfig())

	if r.ctrl.State().GravityInverted {
		t.Fatalf("expected normal gravity")
	}
	r.gravity.inverted = true
	if !r.ctrl.State().GravityInverted {
		t.Fatalf("expected inverted gravity")
	}
}

func TestSceneTriggers(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want int
	}{
		{"next level", TagNextLevel, 3},
		{"previous level", TagPreviousLevel, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, DefaultConfig())
			r.ctrl.OnTriggerEnter(tt.tag)

			if len(r.scenes.loads) != 1 || r.scenes.loads[0] != tt.want {
				t.Fatalf("expected load of %d, got %v", tt.want, r.scenes.loads)
			}
		})
	}
}

func TestUnknownTriggerIsIgnored(t *testing.T) {
	r := newRig(t, DefaultConfig())
	r.ctrl.OnTriggerEnter(Tag("Checkpoint"))

	if len(r.scenes.loads) != 0 || r.collider.disabled {
		t.Fatalf("expected no effect, loads=%v disabled=%v", r.scenes.loads, r.collider.disabled)
	}
}

func TestQuitKeyLoadsFirstScene(t *testing.T) {
	r := newRig(t, DefaultConfig())
	r.tick(0, KeyQuit)

	if len(r.scenes.loads) != 1 || r.scenes.loads[0] != 0 {
		t.Fatalf("expected load of 0, got %v", r.scenes.loads)
	}
}
