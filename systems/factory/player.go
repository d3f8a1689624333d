package factory

import (
	"github.com/automoto/magehorde/archetypes"
	"github.com/automoto/magehorde/assets"
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreatePlayer spawns the keyboard-controlled mage. It is the camera target.
func CreatePlayer(ecs *ecs.ECS, position math.Vec2, sprite *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	transform.Transform.SetValue(player, transform.TransformData{
		LocalPosition: position,
		LocalScale:    math.NewVec2(1, 1),
	})
	components.Depth.SetValue(player, components.DepthData{Z: -position.Y})
	components.Moveable.SetValue(player, components.MoveableData{Speed: cfg.Player.Speed})
	components.Velocity.SetValue(player, components.VelocityData{})
	components.Sprite.SetValue(player, components.SpriteData{Image: sprite, Name: assets.MageSprite})

	obj := resolv.NewObject(0, 0, cfg.Player.BodyWidth, cfg.Player.BodyHeight, tags.ResolvPlayer)
	obj.Data = player
	components.Body.SetValue(player, components.BodyData{Object: obj})
	addToSpace(ecs, obj, position)

	return player
}

// addToSpace registers a body with the space singleton, if the scene has one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object, position math.Vec2) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	space.Place(obj, position)
}
