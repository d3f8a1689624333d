package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock by one tick. Ebitengine calls Update
// at a fixed rate, so a tick lasts 1/TPS seconds. Elapsed time stands still
// while paused so the walk cycle resumes where it left off.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Delta = 1.0 / float64(ebiten.TPS())
	if GetOrCreatePause(ecs).IsPaused {
		return
	}
	clock.Elapsed += clock.Delta
	clock.Ticks++
}

// GetOrCreateClock returns the singleton FrameClock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.FrameClockData {
	entry, ok := components.FrameClock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.FrameClock))
	}
	return components.FrameClock.Get(entry)
}
