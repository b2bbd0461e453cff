package controller

import (
	"fmt"
	"time"
)

// DeathTiming holds the waits between the steps of the death sequence.
type DeathTiming struct {
	HitPause     time.Duration // mini-jump to freeze
	SoundDelay   time.Duration // freeze to death sound
	RespawnDelay time.Duration // death sound to scene reload
}

// Config contains the controller tunables.
type Config struct {
	Speed        float64
	JumpSpeed    float64
	DashDistance float64
	DashTime     time.Duration

	// Ground check
	CheckRadius  float64
	GroundLayers LayerMask

	Death DeathTiming

	JumpClip     Clip
	MiniJumpClip Clip
	DashClip     Clip
	DeathClip    Clip
}

// DefaultConfig returns the stock tunables in world units per second.
func DefaultConfig() Config {
	return Config{
		Speed:        5,
		JumpSpeed:    10,
		DashDistance: 15,
		DashTime:     200 * time.Millisecond,
		CheckRadius:  0.2,
		GroundLayers: LayerMask{"ground"},
		Death: DeathTiming{
			HitPause:     100 * time.Millisecond,
			SoundDelay:   700 * time.Millisecond,
			RespawnDelay: 1500 * time.Millisecond,
		},
		JumpClip:     "jump",
		MiniJumpClip: "mini_jump",
		DashClip:     "dash",
		DeathClip:    "death",
	}
}

// Validate rejects values the controller cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidConfig, c.Speed)
	case c.JumpSpeed <= 0:
		return fmt.Errorf("%w: jump speed must be positive, got %v", ErrInvalidConfig, c.JumpSpeed)
	case c.DashDistance < 0:
		return fmt.Errorf("%w: dash distance must not be negative, got %v", ErrInvalidConfig, c.DashDistance)
	case c.DashTime < 0:
		return fmt.Errorf("%w: dash time must not be negative, got %v", ErrInvalidConfig, c.DashTime)
	case c.CheckRadius <= 0:
		return fmt.Errorf("%w: ground check radius must be positive, got %v", ErrInvalidConfig, c.CheckRadius)
	case c.Death.HitPause < 0 || c.Death.SoundDelay < 0 || c.Death.RespawnDelay < 0:
		return fmt.Errorf("%w: death timings must not be negative", ErrInvalidConfig)
	}
	return nil
}
