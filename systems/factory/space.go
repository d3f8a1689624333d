package factory

import (
	"github.com/automoto/magehorde/archetypes"
	"github.com/automoto/magehorde/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the contact space covering an arena of the given size.
// World origin maps to the center of the space.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cellWidth, cellHeight),
		OffsetX: float64(width) / 2,
		OffsetY: float64(height) / 2,
	})
	return space
}
