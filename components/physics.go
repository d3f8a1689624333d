package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MoveableData is attached to anything that can move on its own
type MoveableData struct {
	Speed float64 // world units per second
}

var Moveable = donburi.NewComponentType[MoveableData]()

// VelocityData is the current displacement rate in world units per second.
// Written by the input and seek systems, consumed by movement.
type VelocityData struct {
	math.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()
