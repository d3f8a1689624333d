package systems

import (
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause and debug overlay toggles.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.ShowDebug = !settings.ShowDebug
		SaveCurrentSettings(settings)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.HUD.OverlayColor,
		false,
	)

	title := "PAUSED"
	titleFont := fonts.Title.Get()
	titleWidth := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, int(width)/2-titleWidth/2, int(height)/2, cfg.HUD.TextColor)

	hint := "Esc: Resume   Q: Menu   F3: Debug"
	hintFont := fonts.Small.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, int(width)/2-hintWidth/2, int(height)-12, cfg.HUD.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// IsPaused reports whether gameplay is currently suspended
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}
