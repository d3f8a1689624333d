package components

import "github.com/yohamta/donburi"

// SeekData points an agent at the entity it walks toward.
// Set once at spawn and never mutated.
type SeekData struct {
	Target donburi.Entity
}

var Seek = donburi.NewComponentType[SeekData]()
