package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var bounded = query.NewQuery(filter.Contains(
	components.Body,
	transform.Transform,
))

// UpdateBounds keeps every body inside the arena, which is also the extent
// of the contact space. Must run AFTER UpdateMovement.
func UpdateBounds(ecs *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Layout
	if arena == nil {
		return
	}

	bounded.Each(ecs.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		t := transform.Transform.Get(entry)
		halfW, halfH := body.W/2, body.H/2

		p := t.LocalPosition
		if arena.Contains(math.NewVec2(p.X-halfW, p.Y-halfH)) && arena.Contains(math.NewVec2(p.X+halfW, p.Y+halfH)) {
			return
		}
		t.LocalPosition = arena.Clamp(p, halfW, halfH)
	})
}
