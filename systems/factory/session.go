package factory

import (
	"github.com/automoto/gravrun/archetypes"
	"github.com/automoto/gravrun/components"
	cfg "github.com/automoto/gravrun/config"
	"github.com/automoto/gravrun/gravity"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding input, the SFX queue, the
// shared gravity field, settings and the fade-in overlay.
func CreateSession(ecs *ecs.ECS, field *gravity.Field, settings components.SettingsData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Gravity.SetValue(session, components.GravityData{Field: field})
	components.Settings.SetValue(session, settings)
	components.Fade.SetValue(session, components.FadeData{
		Tween: gween.New(1, 0, cfg.Fade.Duration, ease.OutQuad),
		Alpha: 1,
	})

	return session
}
