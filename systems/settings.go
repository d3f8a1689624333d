package systems

import (
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the global defaults if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, CurrentSettings())
	}
	return components.Settings.Get(entry)
}

// Settings chosen in the setup menu or loaded from disk, carried across
// scenes. HordeSize 0 defers to the arena map, then to config.
var currentSettings components.SettingsData

// CurrentSettings returns the settings new scenes start with
func CurrentSettings() components.SettingsData {
	return currentSettings
}

// ResolveHordeSize picks the horde size for a scene: an explicit setting
// wins, then the arena's suggestion, then the configured default.
func ResolveHordeSize(setting, arena int) int {
	switch {
	case setting > 0:
		return ClampHordeSize(setting)
	case arena > 0:
		return ClampHordeSize(arena)
	default:
		return cfg.Horde.Count
	}
}

// SetCurrentSettings replaces the settings new scenes start with
func SetCurrentSettings(s components.SettingsData) {
	currentSettings = s
}

// ClampHordeSize keeps a requested horde size within what the game supports
func ClampHordeSize(n int) int {
	if n < 0 {
		return 0
	}
	if n > cfg.Horde.MaxCount {
		return cfg.Horde.MaxCount
	}
	return n
}

// NextHordeSize cycles through the preset horde sizes, wrapping around.
// Sizes not in the preset list (including the 0 default) jump to the first preset.
func NextHordeSize(current int) int {
	sizes := cfg.Horde.Sizes
	if len(sizes) == 0 {
		return current
	}
	for i, size := range sizes {
		if size == current {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return sizes[0]
}
