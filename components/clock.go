package components

import "github.com/yohamta/donburi"

// FrameClockData is the singleton frame timer.
// Delta is the duration of the current tick, Elapsed the unpaused time since
// the scene started, both in seconds.
type FrameClockData struct {
	Delta   float64
	Elapsed float64
	Ticks   int
}

var FrameClock = donburi.NewComponentType[FrameClockData]()
