package factory

import (
	"math/rand"

	"github.com/automoto/magehorde/archetypes"
	"github.com/automoto/magehorde/assets"
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// AgentSprites maps each agent kind to the image it is drawn with
type AgentSprites map[cfg.AgentKind]*ebiten.Image

// CreateAgent spawns a single seeking agent aimed at target.
func CreateAgent(ecs *ecs.ECS, position math.Vec2, kind cfg.AgentKind, speed float64, target donburi.Entity, sprite *ebiten.Image) *donburi.Entry {
	agent := archetypes.Agent.Spawn(ecs)

	transform.Transform.SetValue(agent, transform.TransformData{
		LocalPosition: position,
		LocalScale:    math.NewVec2(1, 1),
	})
	components.Depth.SetValue(agent, components.DepthData{Z: -position.Y})
	components.Moveable.SetValue(agent, components.MoveableData{Speed: speed})
	components.Velocity.SetValue(agent, components.VelocityData{})
	components.Seek.SetValue(agent, components.SeekData{Target: target})
	components.Sprite.SetValue(agent, components.SpriteData{Image: sprite, Name: assets.AgentSprite(kind)})

	// The whole horde pops in at once, so fade each one in instead
	components.SpawnFade.SetValue(agent, components.SpawnFadeData{
		Tween: gween.New(0, 1, cfg.Horde.FadeInDuration, ease.OutQuad),
		Alpha: 0,
	})

	obj := resolv.NewObject(0, 0, cfg.Horde.BodyWidth, cfg.Horde.BodyHeight, tags.ResolvAgent)
	obj.Data = agent
	components.Body.SetValue(agent, components.BodyData{Object: obj})
	addToSpace(ecs, obj, position)

	return agent
}

// SpawnHorde creates count agents at uniformly random positions within
// extent of center on both axes, each with a random kind and a speed in
// [MinSpeed, MaxSpeed).
func SpawnHorde(ecs *ecs.ECS, count int, center math.Vec2, extent float64, rng *rand.Rand, sprites AgentSprites, target donburi.Entity) []*donburi.Entry {
	agents := make([]*donburi.Entry, 0, count)
	speedRange := cfg.Horde.MaxSpeed - cfg.Horde.MinSpeed

	for i := 0; i < count; i++ {
		position := math.NewVec2(
			center.X+(rng.Float64()*2-1)*extent,
			center.Y+(rng.Float64()*2-1)*extent,
		)
		kind := cfg.AgentKind(rng.Intn(int(cfg.AgentKindCount)))
		speed := cfg.Horde.MinSpeed + rng.Float64()*speedRange

		agents = append(agents, CreateAgent(ecs, position, kind, speed, target, sprites[kind]))
	}

	return agents
}
