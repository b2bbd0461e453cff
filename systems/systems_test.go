package systems

import (
	"testing"

	"github.com/automoto/gravrun/components"
	"github.com/automoto/gravrun/gravity"
	"github.com/automoto/gravrun/levels"
	"github.com/automoto/gravrun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLevels is three levels; the middle one respawns on the first.
func testLevels() []*levels.Level {
	return []*levels.Level{
		{Name: "a", Width: 320, Height: 240, Respawn: 0},
		{Name: "b", Width: 320, Height: 240, Respawn: 0},
		{Name: "c", Width: 320, Height: 240, Respawn: 2},
	}
}

type testWorld struct {
	ecs     *ecs.ECS
	field   *gravity.Field
	session *donburi.Entry
	level   *donburi.Entry
}

// newTestWorld builds level 1 with a floor whose top is at y=100.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	field := gravity.NewField(1100)

	w := &testWorld{ecs: e, field: field}
	w.level = factory.CreateLevel(e, testLevels(), 1)
	factory.CreateSpace(e, 320, 240, 16, 16)
	w.session = factory.CreateSession(e, field, components.SettingsData{SFXVolume: 1})
	factory.CreateGround(e, levels.Rect{X: 0, Y: 100, W: 320, H: 16})
	return w
}

func (w *testWorld) player(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()

	p := factory.CreatePlayer(w.ecs, x, y, w.field.Rotation())
	if _, err := AttachController(w.ecs, p); err != nil {
		t.Fatalf("attach controller: %v", err)
	}
	return p
}
