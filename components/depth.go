package components

import "github.com/yohamta/donburi"

// DepthData is the draw order coordinate. Higher Z draws in front.
type DepthData struct {
	Z float64
}

var Depth = donburi.NewComponentType[DepthData]()
