package controller

// die disables the collider and runs the death sequence to completion.
// A disabled collider keeps further triggers from reaching the controller.
func (c *Controller) die() {
	c.collider.Disable()

	d := c.cfg.Death
	c.timeline.Start(
		Step{Do: c.miniJump},
		Step{Delay: d.HitPause, Do: func() {
			c.body.FreezePosition()
			c.animator.SetTrigger(AnimDie)
		}},
		Step{Delay: d.SoundDelay, Do: func() {
			c.audio.PlaySound(c.cfg.DeathClip)
		}},
		Step{Delay: d.RespawnDelay, Do: c.respawn},
	)
}

func (c *Controller) respawn() {
	c.scenes.LoadScene(c.trap.RespawnSceneIndex())

	// Reset whether or not gravity was inverted when the player died.
	c.gravity.ResetGravity()
	c.body.SetRotation(0)
}
