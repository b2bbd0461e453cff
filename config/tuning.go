package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidValue = errors.New("config: invalid value")

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current values.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Death   DeathConfig   `yaml:"death"`
}

// CurrentTuning returns the values in effect.
func CurrentTuning() Tuning {
	return Tuning{Player: Player, Physics: Physics, Death: Death}
}

// ParseTuning decodes data on top of the current values and validates the
// result.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if err := BuildControllerConfig(t.Player, t.Death).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	switch {
	case t.Player.Mass <= 0:
		return fmt.Errorf("%w: player mass must be positive, got %v", ErrInvalidValue, t.Player.Mass)
	case t.Player.CollisionWidth <= 0 || t.Player.CollisionHeight <= 0:
		return fmt.Errorf("%w: player collision box must be positive, got %dx%d",
			ErrInvalidValue, t.Player.CollisionWidth, t.Player.CollisionHeight)
	case t.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidValue, t.Physics.Gravity)
	case t.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: max fall speed must be positive, got %v", ErrInvalidValue, t.Physics.MaxFallSpeed)
	}
	return nil
}

// Apply makes t the current configuration.
func (t Tuning) Apply() {
	Player = t.Player
	Physics = t.Physics
	Death = t.Death
}
