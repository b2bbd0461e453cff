package controller

// Vector is a 2D vector. Velocities and impulses use positive Y up; points
// are in whatever space the World and Body share.
type Vector struct {
	X, Y float64
}

// Key is a discrete input the controller reacts to on the tick it is pressed.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyDash
	KeyQuit
)

// Axis names a continuous input.
type Axis string

const AxisHorizontal Axis = "Horizontal"

// Clip identifies a sound effect.
type Clip string

// Tag identifies the kind of trigger volume the player entered.
type Tag string

const (
	TagTrap          Tag = "Trap"
	TagNextLevel     Tag = "NextLevel"
	TagPreviousLevel Tag = "PreviousLevel"
)

// Animation parameters driven by the controller.
const (
	AnimRun      = "run"
	AnimGrounded = "grounded"
	AnimDash     = "dash"
	AnimJump     = "jump"
	AnimDie      = "die"
)

// LayerMask is the set of collision layers a query tests against.
type LayerMask []string

// Body is the physics body the controller drives.
type Body interface {
	Velocity() Vector
	SetVelocity(v Vector)
	// ApplyImpulse changes velocity by impulse divided by the body mass.
	ApplyImpulse(impulse Vector)
	GravityScale() float64
	SetGravityScale(scale float64)
	// FreezePosition stops all translation. Rotation is unaffected.
	FreezePosition()
	// FootPosition is the anchor the ground check is made from.
	FootPosition() Vector
	// MirrorX negates the horizontal scale of the body's transform.
	MirrorX()
	SetRotation(degrees float64)
}

// Collider is the player's own trigger and collision volume.
type Collider interface {
	Enabled() bool
	Disable()
}

type World interface {
	OverlapCircle(point Vector, radius float64, layers LayerMask) bool
}

type Input interface {
	AxisValue(axis Axis) float64
	KeyPressedThisTick(key Key) bool
}

type Animator interface {
	SetBool(name string, value bool)
	SetTrigger(name string)
}

type Audio interface {
	PlaySound(clip Clip)
}

type Scenes interface {
	LoadScene(index int)
	CurrentSceneIndex() int
}

// Gravity reports the world gravity orientation. ResetGravity restores the
// canonical downward vector.
type Gravity interface {
	IsInverted() bool
	ResetGravity()
}

// Trap describes where the player respawns after touching a hazard.
type Trap interface {
	RespawnSceneIndex() int
}

// Deps bundles the collaborators a Controller needs. Every field is required.
type Deps struct {
	Body     Body
	Collider Collider
	World    World
	Input    Input
	Animator Animator
	Audio    Audio
	Scenes   Scenes
	Gravity  Gravity
	Trap     Trap
}

func (d Deps) validate() error {
	checks := []struct {
		name    string
		missing bool
	}{
		{"body", d.Body == nil},
		{"collider", d.Collider == nil},
		{"world", d.World == nil},
		{"input", d.Input == nil},
		{"animator", d.Animator == nil},
		{"audio", d.Audio == nil},
		{"scenes", d.Scenes == nil},
		{"gravity", d.Gravity == nil},
		{"trap", d.Trap == nil},
	}
	for _, c := range checks {
		if c.missing {
			return &DependencyError{Name: c.name}
		}
	}
	return nil
}
