package systems

import (
	"image/color"

	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances the scene fade-in tween.
func UpdateFade(ecs *ecs.ECS) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Done || fade.Tween == nil {
		return
	}

	fade.Alpha, fade.Done = fade.Tween.Update(float32(cfg.C.FrameDuration().Seconds()))
}

func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Done || fade.Alpha <= 0 {
		return
	}

	// color.RGBA is alpha-premultiplied, so every channel scales.
	a := clamp01(fade.Alpha)
	c := cfg.Fade.Color
	overlay := color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlay, false)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
