package factory

import (
	"github.com/automoto/magehorde/archetypes"
	"github.com/automoto/magehorde/assets"
	"github.com/automoto/magehorde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArena(ecs *ecs.ECS, layout *assets.Arena) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{Layout: layout})
	return arena
}
