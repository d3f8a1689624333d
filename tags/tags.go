package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Agent  = donburi.NewTag().SetName("Agent")

	// CameraTarget marks the single entity the camera follows
	CameraTarget = donburi.NewTag().SetName("CameraTarget")
)

// Resolv tags for contact detection
const (
	ResolvPlayer = "player"
	ResolvAgent  = "agent"
)
