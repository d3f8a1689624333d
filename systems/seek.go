package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/automoto/magehorde/gamemath"
	"github.com/kamstrup/intmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var seekers = query.NewQuery(filter.Contains(
	components.Moveable,
	components.Seek,
	components.Velocity,
	transform.Transform,
))

type seekTarget struct {
	position math.Vec2
	found    bool
}

// Targets resolved this frame, including misses. The whole horde usually
// shares one target, so this turns a thousand entity lookups into one.
var seekTargets = intmap.New[donburi.Entity, seekTarget](4)

// UpdateSeek points every seeking agent at its target with its own speed.
// An agent whose target is gone (despawned or no transform) stops.
func UpdateSeek(ecs *ecs.ECS) {
	seekTargets.Clear()

	seekers.Each(ecs.World, func(entry *donburi.Entry) {
		seek := components.Seek.Get(entry)
		velocity := components.Velocity.Get(entry)

		target, ok := lookupSeekTarget(ecs.World, seek.Target)
		if !ok {
			velocity.Vec2 = math.Vec2{}
			return
		}

		speed := components.Moveable.Get(entry).Speed
		position := transform.WorldPosition(entry)
		velocity.Vec2 = gamemath.SeekVelocity(position, target, speed)
	})
}

func lookupSeekTarget(world donburi.World, target donburi.Entity) (math.Vec2, bool) {
	if cached, ok := seekTargets.Get(target); ok {
		return cached.position, cached.found
	}

	resolved := seekTarget{}
	if world.Valid(target) {
		entry := world.Entry(target)
		if entry.HasComponent(transform.Transform) {
			resolved = seekTarget{position: transform.WorldPosition(entry), found: true}
		}
	}

	seekTargets.Put(target, resolved)
	return resolved.position, resolved.found
}
