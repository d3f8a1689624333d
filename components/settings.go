package components

import "github.com/yohamta/donburi"

// SettingsData holds the player-adjustable settings for the running scene
type SettingsData struct {
	ShowDebug bool
	HordeSize int
}

var Settings = donburi.NewComponentType[SettingsData]()
