package archetypes

import (
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Camera = newArchetype(
		components.Camera,
		transform.Transform,
	)
	Player = newArchetype(
		tags.Player,
		tags.CameraTarget,
		transform.Transform,
		components.Depth,
		components.Moveable,
		components.Velocity,
		components.Sprite,
		components.Body,
	)
	Agent = newArchetype(
		tags.Agent,
		transform.Transform,
		components.Depth,
		components.Moveable,
		components.Velocity,
		components.Seek,
		components.Sprite,
		components.Body,
		components.SpawnFade,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
