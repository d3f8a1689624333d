package components

import "github.com/yohamta/donburi"

// CameraData marks the camera entity. The camera's position lives in its
// transform so the follow system can lerp it like any other entity.
type CameraData struct {
	Zoom float64 // screen pixels per world unit
}

var Camera = donburi.NewComponentType[CameraData]()
