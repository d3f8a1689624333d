package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var depthSorted = query.NewQuery(filter.And(
	filter.Contains(components.Depth, transform.Transform),
	filter.Not(filter.Contains(components.Camera)),
))

// UpdateDepth sets each entity's draw depth to its negated height, so
// entities lower on screen draw in front.
func UpdateDepth(ecs *ecs.ECS) {
	depthSorted.Each(ecs.World, func(entry *donburi.Entry) {
		components.Depth.Get(entry).Z = -1 * transform.WorldPosition(entry).Y
	})
}
