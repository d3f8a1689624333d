package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the contact shape of a player or agent in the resolv space.
// Resolv coordinates are top-left based and non-negative, so the contact
// system converts from world space when syncing.
type BodyData struct {
	*resolv.Object
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData wraps the resolv space singleton along with the world offset used
// to map y-up world coordinates into it.
type SpaceData struct {
	*resolv.Space
	OffsetX float64
	OffsetY float64
}

var Space = donburi.NewComponentType[SpaceData]()

// Place centers obj on a world position and refreshes its cells.
func (s *SpaceData) Place(obj *resolv.Object, pos math.Vec2) {
	obj.X = pos.X + s.OffsetX - obj.W/2
	obj.Y = s.OffsetY - pos.Y - obj.H/2
	obj.Update()
}

// ContactsData is a singleton tracking how many agents touch the player
type ContactsData struct {
	Current int
	Peak    int
}

var Contacts = donburi.NewComponentType[ContactsData]()
