package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/magehorde/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	HordeSize int  `json:"hordeSize"`
	ShowDebug bool `json:"showDebug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "magehorde",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.HordeSize = ClampHordeSize(settings.HordeSize)
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the running scene's settings and makes them
// the starting point for the next scene.
func SaveCurrentSettings(s *components.SettingsData) {
	SetCurrentSettings(*s)
	_ = SaveSettings(&SavedSettings{
		HordeSize: s.HordeSize,
		ShowDebug: s.ShowDebug,
	})
}

// ApplySavedSettingsGlobal applies loaded settings before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetCurrentSettings(components.SettingsData{
		HordeSize: saved.HordeSize,
		ShowDebug: saved.ShowDebug,
	})
}
