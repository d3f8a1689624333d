package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/gamemath"
	"github.com/automoto/magehorde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateCamera eases the camera toward the camera target. The smoothing is
// a fixed fraction per frame, not scaled by frame time.
// Must run AFTER UpdateMovement.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := single(e.World, components.Camera.Each)
	if !ok {
		return
	}
	targetEntry, ok := single(e.World, tags.CameraTarget.Each)
	if !ok {
		return // no target, or more than one and nothing sensible to follow
	}

	target := transform.WorldPosition(targetEntry)
	camera := transform.Transform.Get(cameraEntry)
	camera.LocalPosition = gamemath.Lerp(camera.LocalPosition, target, config.Camera.FollowSmoothing)
}

// single returns the only entry an iterator yields. It reports false when
// there are none or more than one.
func single(w donburi.World, each func(donburi.World, func(*donburi.Entry))) (*donburi.Entry, bool) {
	var found *donburi.Entry
	count := 0
	each(w, func(entry *donburi.Entry) {
		count++
		found = entry
	})
	return found, count == 1
}
