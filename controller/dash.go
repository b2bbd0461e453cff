package controller

// dash starts a dash window. Dashing again inside the window restarts it;
// only the newest window's end step takes effect.
func (c *Controller) dash() {
	c.dashing = true
	c.audio.PlaySound(c.cfg.DashClip)
	c.animator.SetBool(AnimDash, true)

	c.dashGen++
	gen := c.dashGen

	c.timeline.Start(
		Step{Do: c.launchDash},
		Step{Delay: c.cfg.DashTime, Do: func() { c.endDash(gen) }},
	)
}

func (c *Controller) launchDash() {
	v := c.body.Velocity()
	if c.facingRight {
		c.body.SetVelocity(Vector{})
		c.body.ApplyImpulse(Vector{X: c.cfg.DashDistance})
	} else {
		// Residual velocity at trigger time is folded into the impulse.
		c.body.SetVelocity(Vector{X: -v.X})
		c.body.ApplyImpulse(Vector{X: -(c.cfg.DashDistance + v.X)})
	}

	// A restarted dash keeps the scale recorded by the first one.
	if !c.gravitySaved {
		c.dashGravity = c.body.GravityScale()
		c.gravitySaved = true
	}
	c.body.SetGravityScale(0)
}

func (c *Controller) endDash(gen int) {
	if gen != c.dashGen {
		return
	}

	c.dashing = false
	c.animator.SetBool(AnimDash, false)
	c.body.SetGravityScale(c.dashGravity)
	c.gravitySaved = false
}
