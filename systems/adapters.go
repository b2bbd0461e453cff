package systems

import (
	"log"
	"math"

	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttachController builds the player's controller on top of the scene's
// components and stores it on the player entry.
func AttachController(e *ecs.ECS, player *donburi.Entry) (*controller.Controller, error) {
	session, ok := components.Gravity.First(e.World)
	if !ok {
		return nil, &controller.DependencyError{Name: "gravity"}
	}
	field := components.Gravity.Get(session).Field
	if field == nil {
		return nil, &controller.DependencyError{Name: "gravity"}
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil, &controller.DependencyError{Name: "trap"}
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil, &controller.DependencyError{Name: "world"}
	}

	scenes := sceneService{level: levelEntry}
	ctrl, err := controller.New(cfg.ControllerConfig(), controller.Deps{
		Body:     playerBody{entry: player},
		Collider: playerCollider{entry: player},
		World:    spaceQuery{space: components.Space.Get(spaceEntry)},
		Input:    inputSource{session: session},
		Animator: animator{entry: player},
		Audio:    sfxQueue{session: session},
		Scenes:   scenes,
		Gravity:  field,
		Trap:     levelTrap{level: levelEntry},
	})
	if err != nil {
		return nil, err
	}

	components.Player.Get(player).Controller = ctrl
	return ctrl, nil
}

type playerBody struct {
	entry *donburi.Entry
}

func (b playerBody) Velocity() controller.Vector {
	return components.Physics.Get(b.entry).Velocity
}

func (b playerBody) SetVelocity(v controller.Vector) {
	components.Physics.Get(b.entry).Velocity = v
}

func (b playerBody) ApplyImpulse(impulse controller.Vector) {
	physics := components.Physics.Get(b.entry)
	physics.Velocity.X += impulse.X / physics.Mass
	physics.Velocity.Y += impulse.Y / physics.Mass
}

func (b playerBody) GravityScale() float64 {
	return components.Physics.Get(b.entry).GravityScale
}

func (b playerBody) SetGravityScale(scale float64) {
	components.Physics.Get(b.entry).GravityScale = scale
}

func (b playerBody) FreezePosition() {
	components.Physics.Get(b.entry).Frozen = true
}

// FootPosition is bottom-centre in screen space, or top-centre while the
// player is rotated upside down.
func (b playerBody) FootPosition() controller.Vector {
	obj := components.Object.Get(b.entry)
	player := components.Player.Get(b.entry)

	foot := controller.Vector{X: obj.X + obj.W/2, Y: obj.Y + obj.H - cfg.Player.FootInset}
	if math.Abs(player.Rotation) == 180 {
		foot.Y = obj.Y + cfg.Player.FootInset
	}
	return foot
}

func (b playerBody) MirrorX() {
	player := components.Player.Get(b.entry)
	player.ScaleX = -player.ScaleX
}

func (b playerBody) SetRotation(degrees float64) {
	components.Player.Get(b.entry).Rotation = degrees
}

type playerCollider struct {
	entry *donburi.Entry
}

func (c playerCollider) Enabled() bool {
	return components.Player.Get(c.entry).ColliderEnabled
}

func (c playerCollider) Disable() {
	components.Player.Get(c.entry).ColliderEnabled = false
}

// spaceQuery answers ground checks with a temporary probe object.
type spaceQuery struct {
	space *resolv.Space
}

func (q spaceQuery) OverlapCircle(p controller.Vector, radius float64, layers controller.LayerMask) bool {
	probe := resolv.NewObject(p.X-radius, p.Y-radius, radius*2, radius*2)
	q.space.Add(probe)
	defer q.space.Remove(probe)

	check := probe.Check(0, 0, layers...)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if circleOverlapsRect(p, radius, obj) {
			return true
		}
	}
	return false
}

func circleOverlapsRect(p controller.Vector, radius float64, obj *resolv.Object) bool {
	nx := math.Max(obj.X, math.Min(p.X, obj.X+obj.W))
	ny := math.Max(obj.Y, math.Min(p.Y, obj.Y+obj.H))
	dx, dy := p.X-nx, p.Y-ny
	return dx*dx+dy*dy < radius*radius
}

type inputSource struct {
	session *donburi.Entry
}

var keyActions = map[controller.Key]cfg.ActionID{
	controller.KeyUp:   cfg.ActionJumpUp,
	controller.KeyDown: cfg.ActionJumpDown,
	controller.KeyDash: cfg.ActionDash,
	controller.KeyQuit: cfg.ActionQuit,
}

func (in inputSource) AxisValue(axis controller.Axis) float64 {
	if axis != controller.AxisHorizontal {
		return 0
	}
	return components.Input.Get(in.session).Horizontal
}

func (in inputSource) KeyPressedThisTick(key controller.Key) bool {
	id, ok := keyActions[key]
	if !ok {
		return false
	}
	return GetAction(components.Input.Get(in.session), id).JustPressed
}

type animator struct {
	entry *donburi.Entry
}

func (a animator) SetBool(name string, value bool) {
	components.Animation.Get(a.entry).Bools[name] = value
}

func (a animator) SetTrigger(name string) {
	anim := components.Animation.Get(a.entry)
	if name == controller.AnimDie {
		anim.Dead = true
	}
	anim.Triggers[name] = triggerFrames
}

type sfxQueue struct {
	session *donburi.Entry
}

func (q sfxQueue) PlaySound(clip controller.Clip) {
	audio := components.Audio.Get(q.session)
	audio.PendingSFX = append(audio.PendingSFX, clip)
}

// sceneService records scene changes for the scene to apply after the
// frame's systems have run.
type sceneService struct {
	level *donburi.Entry
}

func (s sceneService) LoadScene(index int) {
	level := components.Level.Get(s.level)
	if index < 0 || index >= len(level.Levels) {
		log.Printf("Warning: scene %d does not exist, staying on %d", index, level.Index)
		return
	}
	level.Pending = index
	level.Request = true
}

func (s sceneService) CurrentSceneIndex() int {
	return components.Level.Get(s.level).Index
}

type levelTrap struct {
	level *donburi.Entry
}

func (t levelTrap) RespawnSceneIndex() int {
	return components.Level.Get(t.level).Current().Respawn
}
