package config

import (
	"image/color"
	"time"

	"github.com/automoto/gravrun/controller"
)

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, positive Y up.
type PlayerConfig struct {
	// Movement
	Speed        float64       `yaml:"speed"`
	JumpSpeed    float64       `yaml:"jump_speed"`
	DashDistance float64       `yaml:"dash_distance"` // impulse applied by a dash
	DashTime     time.Duration `yaml:"dash_time"`
	Mass         float64       `yaml:"mass"`

	// Ground check
	CheckRadius float64 `yaml:"check_radius"`
	FootInset   float64 `yaml:"foot_inset"` // how far inside the collision box the foot anchor sits

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"` // px/s², magnitude of the default downward pull
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// DeathConfig contains the waits between death sequence steps
type DeathConfig struct {
	HitPause     time.Duration `yaml:"hit_pause"`
	SoundDelay   time.Duration `yaml:"sound_delay"`
	RespawnDelay time.Duration `yaml:"respawn_delay"`
}

// FadeConfig contains the scene fade-in overlay values
type FadeConfig struct {
	Duration float32 // seconds
	Color    color.RGBA
}

// UIConfig contains debug drawing colors
type UIConfig struct {
	SolidColor  color.RGBA
	TrapColor   color.RGBA
	DoorColor   color.RGBA
	PlayerColor color.RGBA
	DeadColor   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	TPS       int
	CellSize  int
	LevelsDir string
}

// FrameDuration is the simulated time of one update.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool   // Draw collision boxes and controller state
	TuningPath string // Optional YAML file overriding Player/Physics/Death values
	Watch      bool   // Reload TuningPath when it changes
	StartLevel int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Death DeathConfig
var Fade FadeConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray         = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:     640,
		Height:    360,
		TPS:       60,
		CellSize:  16,
		LevelsDir: "levels",
	}

	Player = PlayerConfig{
		Speed:        160,
		JumpSpeed:    380,
		DashDistance: 480,
		DashTime:     200 * time.Millisecond,
		Mass:         1,

		CheckRadius: 3,
		FootInset:   1,

		CollisionWidth:  12,
		CollisionHeight: 20,
	}

	Physics = PhysicsConfig{
		Gravity:      1100,
		MaxFallSpeed: 600,
	}

	Death = DeathConfig{
		HitPause:     100 * time.Millisecond,
		SoundDelay:   700 * time.Millisecond,
		RespawnDelay: 1500 * time.Millisecond,
	}

	Fade = FadeConfig{
		Duration: 0.4,
		Color:    BlackOverlay,
	}

	UI = UIConfig{
		SolidColor:  Gray,
		TrapColor:   Red,
		DoorColor:   LightGreen,
		PlayerColor: LightBlue,
		DeadColor:   Orange,
	}

	// Defaults, can be overridden by CLI flags
	Debug = DebugConfig{}
}

// ControllerConfig builds the character controller tunables from the
// current Player and Death values.
func ControllerConfig() controller.Config {
	return BuildControllerConfig(Player, Death)
}

// BuildControllerConfig maps game tunables onto controller.Config.
func BuildControllerConfig(p PlayerConfig, d DeathConfig) controller.Config {
	return controller.Config{
		Speed:        p.Speed,
		JumpSpeed:    p.JumpSpeed,
		DashDistance: p.DashDistance,
		DashTime:     p.DashTime,
		CheckRadius:  p.CheckRadius,
		GroundLayers: controller.LayerMask{LayerGround},
		Death: controller.DeathTiming{
			HitPause:     d.HitPause,
			SoundDelay:   d.SoundDelay,
			RespawnDelay: d.RespawnDelay,
		},
		JumpClip:     ClipJump,
		MiniJumpClip: ClipMiniJump,
		DashClip:     ClipDash,
		DeathClip:    ClipDeath,
	}
}
