package controller

import "time"

// PlayerState is a snapshot of the controller's observable state.
type PlayerState struct {
	Velocity        Vector
	FacingRight     bool
	Grounded        bool
	JumpCount       int
	Dashing         bool
	GravityInverted bool
}

// Controller turns input and physics queries into player movement. It is
// driven by Tick once per frame and by OnTriggerEnter when the player's
// collider enters a trigger volume.
type Controller struct {
	cfg Config

	body     Body
	collider Collider
	world    World
	input    Input
	animator Animator
	audio    Audio
	scenes   Scenes
	gravity  Gravity
	trap     Trap

	timeline Timeline

	facingRight bool
	grounded    bool
	jumpCount   int

	dashing      bool
	dashGen      int
	dashGravity  float64
	gravitySaved bool
}

// New validates cfg and deps and returns a controller facing right.
func New(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}

	return &Controller{
		cfg:         cfg,
		body:        deps.Body,
		collider:    deps.Collider,
		world:       deps.World,
		input:       deps.Input,
		animator:    deps.Animator,
		audio:       deps.Audio,
		scenes:      deps.Scenes,
		gravity:     deps.Gravity,
		trap:        deps.Trap,
		facingRight: true,
	}, nil
}

// Tick advances running sequences by dt, then runs the per-frame update.
func (c *Controller) Tick(dt time.Duration) {
	c.timeline.Advance(dt)

	c.grounded = c.world.OverlapCircle(c.body.FootPosition(), c.cfg.CheckRadius, c.cfg.GroundLayers)

	move := c.input.AxisValue(AxisHorizontal)
	c.locomote(move)
	c.face(move)

	c.tryJump()

	if c.input.KeyPressedThisTick(KeyDash) {
		c.dash()
	}

	if c.input.KeyPressedThisTick(KeyQuit) {
		c.scenes.LoadScene(0)
	}
}

// OnTriggerEnter handles the player entering a trigger volume. Nothing is
// handled while the collider is disabled.
func (c *Controller) OnTriggerEnter(tag Tag) {
	if !c.collider.Enabled() {
		return
	}

	switch tag {
	case TagTrap:
		c.die()
	case TagNextLevel:
		c.scenes.LoadScene(c.scenes.CurrentSceneIndex() + 1)
	case TagPreviousLevel:
		c.scenes.LoadScene(c.scenes.CurrentSceneIndex() - 1)
	}
}

// State returns a copy of the current player state.
func (c *Controller) State() PlayerState {
	return PlayerState{
		Velocity:        c.body.Velocity(),
		FacingRight:     c.facingRight,
		Grounded:        c.grounded,
		JumpCount:       c.jumpCount,
		Dashing:         c.dashing,
		GravityInverted: c.gravity.IsInverted(),
	}
}

// Busy reports whether a dash or death sequence still has steps to run.
func (c *Controller) Busy() bool {
	return c.timeline.Pending() > 0
}
