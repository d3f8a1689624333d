package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/automoto/magehorde/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateContacts syncs every body with its transform and counts the agents
// currently touching the player. Must run AFTER UpdateMovement.
func UpdateContacts(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Body.Each(ecs.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		space.Place(body.Object, transform.WorldPosition(entry))
	})

	contacts := GetOrCreateContacts(ecs)
	contacts.Current = 0

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Body.Get(playerEntry).Object

	// Check is a broadphase over shared cells; narrow it to real overlaps
	if check := player.Check(0, 0, tags.ResolvAgent); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvAgent) {
			if overlaps(player, obj) {
				contacts.Current++
			}
		}
	}

	if contacts.Current > contacts.Peak {
		contacts.Peak = contacts.Current
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// GetOrCreateContacts returns the singleton Contacts component, creating if needed.
func GetOrCreateContacts(ecs *ecs.ECS) *components.ContactsData {
	entry, ok := components.Contacts.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Contacts))
	}
	return components.Contacts.Get(entry)
}
