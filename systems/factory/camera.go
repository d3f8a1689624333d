package factory

import (
	"github.com/automoto/magehorde/archetypes"
	"github.com/automoto/magehorde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func CreateCamera(ecs *ecs.ECS, position math.Vec2, zoom float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Zoom: zoom})
	transform.Transform.SetValue(camera, transform.TransformData{
		LocalPosition: position,
		LocalScale:    math.NewVec2(1, 1),
	})
	return camera
}
