package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws ground, traps and doors as flat rectangles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.UI.SolidColor)
	})
	tags.Trap.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.UI.TrapColor)
	})
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		strokeObject(screen, components.Object.Get(e).Object, cfg.UI.DoorColor)
	})
}

// DrawPlayer draws the player box with a marker on the side it faces and
// on its current floor.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		c := cfg.UI.PlayerColor
		if anim.Dead {
			c = cfg.UI.DeadColor
		}
		fillObject(screen, obj, c)

		eyeX := obj.X + obj.W - 4
		if player.ScaleX < 0 {
			eyeX = obj.X + 1
		}
		eyeY := obj.Y + 3
		if player.Rotation == 180 {
			eyeY = obj.Y + obj.H - 6
		}
		vector.DrawFilledRect(screen, float32(eyeX), float32(eyeY), 3, 3, cfg.White, false)
	})
}

// DrawDebug prints the controller state and outlines every collision object.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(entry).Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			strokeObject(screen, obj, color.RGBA{0, 255, 255, 255})
		}
	}

	level := ""
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		data := components.Level.Get(levelEntry)
		level = fmt.Sprintf("level %d (%s)", data.Index, data.Current().Name)
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil {
			return
		}
		s := player.Controller.State()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"%s\nstate %s\nvel %.0f,%.0f grounded=%v dashing=%v inverted=%v facingRight=%v",
			level, components.Animation.Get(e).State,
			s.Velocity.X, s.Velocity.Y, s.Grounded, s.Dashing, s.GravityInverted, s.FacingRight,
		))
	})
}

func fillObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.DrawFilledRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

func strokeObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
}
