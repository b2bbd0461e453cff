// Package gravity holds the world gravity shared by every scene. It outlives
// scene reloads, so an inversion carries over until something resets it.
package gravity

import "github.com/automoto/gravrun/controller"

// Rotation is the player's rotation in degrees for each orientation.
const (
	UprightRotation  = 0.0
	InvertedRotation = 180.0
)

type Field struct {
	strength float64
	inverted bool
}

// NewField returns a downward field of the given magnitude.
func NewField(strength float64) *Field {
	return &Field{strength: strength}
}

// Vector is the gravity acceleration with positive Y up.
func (f *Field) Vector() controller.Vector {
	if f.inverted {
		return controller.Vector{Y: f.strength}
	}
	return controller.Vector{Y: -f.strength}
}

func (f *Field) IsInverted() bool {
	return f.inverted
}

// Toggle flips the field and reports the new orientation.
func (f *Field) Toggle() bool {
	f.inverted = !f.inverted
	return f.inverted
}

// ResetGravity restores the canonical downward field.
func (f *Field) ResetGravity() {
	f.inverted = false
}

// SetStrength changes the magnitude without touching the orientation.
func (f *Field) SetStrength(strength float64) {
	f.strength = strength
}

// Rotation is the body rotation matching the current orientation.
func (f *Field) Rotation() float64 {
	if f.inverted {
		return InvertedRotation
	}
	return UprightRotation
}
