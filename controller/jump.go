package controller

func (c *Controller) jumpKey() Key {
	if c.gravity.IsInverted() {
		return KeyDown
	}
	return KeyUp
}

// jumpSign is +1 under normal gravity and -1 when it is inverted.
func (c *Controller) jumpSign() float64 {
	if c.gravity.IsInverted() {
		return -1
	}
	return 1
}

func (c *Controller) tryJump() {
	if !c.input.KeyPressedThisTick(c.jumpKey()) || c.jumpCount != 0 || !c.grounded {
		return
	}

	v := c.body.Velocity()
	c.body.SetVelocity(Vector{X: v.X, Y: c.jumpSign() * c.cfg.JumpSpeed})
	c.jumpCount++
	c.audio.PlaySound(c.cfg.JumpClip)
	c.animator.SetTrigger(AnimJump)

	// The counter is cleared as soon as the jump fires, so the gate above
	// only ever sees zero. A grounded player can jump on every fresh press.
	c.jumpCount = 0
}

func (c *Controller) miniJump() {
	c.audio.PlaySound(c.cfg.MiniJumpClip)
	v := c.body.Velocity()
	c.body.SetVelocity(Vector{X: v.X, Y: c.jumpSign() * c.cfg.JumpSpeed / 2})
}
