package systems

import (
	gomath "math"

	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var movers = query.NewQuery(filter.Contains(
	components.Velocity,
	transform.Transform,
))

// UpdateMovement integrates velocity into position, flips facing to match
// the horizontal direction, and applies the walk-cycle wobble.
// Must run AFTER UpdatePlayerVelocity and UpdateSeek.
func UpdateMovement(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)

	movers.Each(ecs.World, func(entry *donburi.Entry) {
		velocity := components.Velocity.Get(entry)
		t := transform.Transform.Get(entry)

		t.LocalPosition.X += velocity.X * clock.Delta
		t.LocalPosition.Y += velocity.Y * clock.Delta

		t.LocalScale.X = gamemath.Facing(velocity.X, t.LocalScale.X)

		speed := gomath.Hypot(velocity.X, velocity.Y)
		t.LocalRotation, t.LocalScale.Y = gamemath.WalkBob(
			clock.Elapsed, speed,
			cfg.Walk.BobFrequency, cfg.Walk.MaxTilt,
			cfg.Walk.MinScaleY, cfg.Walk.MaxScaleY,
		)
	})
}
