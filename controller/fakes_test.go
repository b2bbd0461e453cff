package controller

import (
	"fmt"
	"testing"
	"time"
)

const frame = 10 * time.Millisecond

// journal records collaborator calls with the time they happened.
type journal struct {
	now     time.Duration
	entries []entry
}

type entry struct {
	at   time.Duration
	what string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, entry{at: j.now, what: fmt.Sprintf(format, args...)})
}

// at returns the time of the first entry matching what.
func (j *journal) at(what string) (time.Duration, bool) {
	for _, e := range j.entries {
		if e.what == what {
			return e.at, true
		}
	}
	return 0, false
}

func (j *journal) count(what string) int {
	n := 0
	for _, e := range j.entries {
		if e.what == what {
			n++
		}
	}
	return n
}

type fakeBody struct {
	j        *journal
	velocity Vector
	gravity  float64
	frozen   bool
	scaleX   float64
	rotation float64
	foot     Vector
	impulses []Vector
}

func (b *fakeBody) Velocity() Vector          { return b.velocity }
func (b *fakeBody) SetVelocity(v Vector)      { b.velocity = v }
func (b *fakeBody) GravityScale() float64     { return b.gravity }
func (b *fakeBody) SetGravityScale(s float64) { b.gravity = s }
func (b *fakeBody) FootPosition() Vector      { return b.foot }
func (b *fakeBody) MirrorX()                  { b.scaleX = -b.scaleX }

func (b *fakeBody) ApplyImpulse(impulse Vector) {
	b.impulses = append(b.impulses, impulse)
	b.velocity.X += impulse.X
	b.velocity.Y += impulse.Y
}

func (b *fakeBody) FreezePosition() {
	b.frozen = true
	b.j.add("freeze")
}

func (b *fakeBody) SetRotation(degrees float64) {
	b.rotation = degrees
	b.j.add("rotation %v", degrees)
}

type fakeCollider struct {
	j        *journal
	disabled bool
}

func (c *fakeCollider) Enabled() bool { return !c.disabled }

func (c *fakeCollider) Disable() {
	c.disabled = true
	c.j.add("collider off")
}

type fakeWorld struct {
	grounded bool
	queries  int
	radius   float64
	layers   LayerMask
}

func (w *fakeWorld) OverlapCircle(_ Vector, radius float64, layers LayerMask) bool {
	w.queries++
	w.radius = radius
	w.layers = layers
	return w.grounded
}

type fakeInput struct {
	axis    float64
	pressed map[Key]bool
}

func (in *fakeInput) AxisValue(Axis) float64          { return in.axis }
func (in *fakeInput) KeyPressedThisTick(key Key) bool { return in.pressed[key] }

type fakeAnimator struct {
	j     *journal
	bools map[string]bool
}

func (a *fakeAnimator) SetBool(name string, value bool) { a.bools[name] = value }
func (a *fakeAnimator) SetTrigger(name string)          { a.j.add("trigger %s", name) }

type fakeAudio struct{ j *journal }

func (a *fakeAudio) PlaySound(clip Clip) { a.j.add("sound %s", clip) }

type fakeScenes struct {
	j       *journal
	current int
	loads   []int
}

func (s *fakeScenes) CurrentSceneIndex() int { return s.current }

func (s *fakeScenes) LoadScene(index int) {
	s.loads = append(s.loads, index)
	s.j.add("load %d", index)
}

type fakeGravity struct {
	j        *journal
	inverted bool
}

func (g *fakeGravity) IsInverted() bool { return g.inverted }

func (g *fakeGravity) ResetGravity() {
	g.inverted = false
	g.j.add("gravity reset")
}

type fakeTrap struct{ respawn int }

func (t fakeTrap) RespawnSceneIndex() int { return t.respawn }

// rig wires a controller to fakes and drives it one frame at a time.
type rig struct {
	t *testing.T
	j *journal

	body     *fakeBody
	collider *fakeCollider
	world    *fakeWorld
	input    *fakeInput
	anim     *fakeAnimator
	scenes   *fakeScenes
	gravity  *fakeGravity

	ctrl *Controller
}

func newRig(t *testing.T, cfg Config) *rig {
	t.Helper()

	j := &journal{}
	r := &rig{
		t:        t,
		j:        j,
		body:     &fakeBody{j: j, gravity: 1, scaleX: 1},
		collider: &fakeCollider{j: j},
		world:    &fakeWorld{grounded: true},
		input:    &fakeInput{pressed: map[Key]bool{}},
		anim:     &fakeAnimator{j: j, bools: map[string]bool{}},
		scenes:   &fakeScenes{j: j, current: 2},
		gravity:  &fakeGravity{j: j},
	}

	ctrl, err := New(cfg, Deps{
		Body:     r.body,
		Collider: r.collider,
		World:    r.world,
		Input:    r.input,
		Animator: r.anim,
		Audio:    &fakeAudio{j: j},
		Scenes:   r.scenes,
		Gravity:  r.gravity,
		Trap:     fakeTrap{respawn: 1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.ctrl = ctrl
	return r
}

// tick runs one frame with the given axis value and keys freshly pressed.
func (r *rig) tick(axis float64, keys ...Key) {
	r.j.now += frame
	r.input.axis = axis
	r.input.pressed = map[Key]bool{}
	for _, k := range keys {
		r.input.pressed[k] = true
	}
	r.ctrl.Tick(frame)
}

// idle runs n frames without input.
func (r *rig) idle(n int) {
	for i := 0; i < n; i++ {
		r.tick(0)
	}
}
