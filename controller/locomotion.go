package controller

func (c *Controller) locomote(move float64) {
	if c.dashing {
		return
	}

	v := c.body.Velocity()
	c.body.SetVelocity(Vector{X: move * c.cfg.Speed, Y: v.Y})

	c.animator.SetBool(AnimRun, move != 0)
	c.animator.SetBool(AnimGrounded, c.grounded)
}

func (c *Controller) face(move float64) {
	if (!c.facingRight && move > 0) || (c.facingRight && move < 0) {
		c.facingRight = !c.facingRight
		c.body.MirrorX()
	}
}
