package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed float64 // world units per second

	// Contact body size in world units
	BodyWidth  float64
	BodyHeight float64
}

// AgentKind identifies the sprite an agent is drawn with
type AgentKind int

const (
	AgentOrc AgentKind = iota
	AgentKnight
	AgentKindCount // Must be last - used for random selection
)

func (k AgentKind) String() string {
	switch k {
	case AgentOrc:
		return "orc"
	case AgentKnight:
		return "knight"
	default:
		return "unknown"
	}
}

// HordeConfig contains the seeking agent spawn configuration
type HordeConfig struct {
	Count    int
	MaxCount int
	Extent   float64 // agents spawn in [-Extent, Extent] on both axes
	MinSpeed float64 // inclusive
	MaxSpeed float64 // exclusive

	// Selectable horde sizes in the setup menu
	Sizes []int

	// Spawn fade-in duration in seconds
	FadeInDuration float32

	BodyWidth  float64
	BodyHeight float64
}

// WalkConfig controls the walk-cycle wobble applied by the movement system
type WalkConfig struct {
	BobFrequency float64 // multiplier on elapsed * speed
	MaxTilt      float64 // radians, rotation stays within [-MaxTilt, MaxTilt]
	MinScaleY    float64
	MaxScaleY    float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // lerp factor per frame (0.0-1.0), not frame-rate compensated
	Zoom            float64 // screen pixels per world unit
	CullPadding     float64 // world units around the viewport that still get drawn
}

// HUDConfig contains on-screen text configuration
type HUDConfig struct {
	TextColor    color.RGBA
	ShadowColor  color.RGBA
	Margin       int
	LineHeight   int
	FloorColor   color.RGBA
	GridColor    color.RGBA
	GridSpacing  float64 // world units
	OverlayColor color.RGBA
}

// Config holds the logical screen size
type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config
var Player PlayerConfig
var Horde HordeConfig
var Walk WalkConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip menu and go directly to the arena
	Seed     int64 // 0 = seed from the clock
	Profile  string
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "magehorde",
	}

	Player = PlayerConfig{
		Speed:      40.0,
		BodyWidth:  8.0,
		BodyHeight: 12.0,
	}

	Horde = HordeConfig{
		Count:          1000,
		MaxCount:       5000,
		Extent:         400.0,
		MinSpeed:       10.0,
		MaxSpeed:       20.0,
		Sizes:          []int{100, 250, 500, 1000},
		FadeInDuration: 0.75,
		BodyWidth:      8.0,
		BodyHeight:     12.0,
	}

	Walk = WalkConfig{
		BobFrequency: 0.8,
		MaxTilt:      0.06,
		MinScaleY:    0.9,
		MaxScaleY:    1.1,
	}

	// Camera scale 0.25 in world space means 4 screen pixels per world unit
	Camera = CameraConfig{
		FollowSmoothing: 0.01,
		Zoom:            4.0,
		CullPadding:     16.0,
	}

	HUD = HUDConfig{
		TextColor:    color.RGBA{240, 240, 240, 255},
		ShadowColor:  color.RGBA{0, 0, 0, 200},
		Margin:       8,
		LineHeight:   14,
		FloorColor:   color.RGBA{42, 47, 58, 255},
		GridColor:    color.RGBA{52, 58, 72, 255},
		GridSpacing:  32.0,
		OverlayColor: color.RGBA{0, 0, 0, 160},
	}
}
