package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawnFade advances spawn fade-in tweens and removes them when done
func UpdateSpawnFade(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	var finished []*donburi.Entry

	components.SpawnFade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.SpawnFade.Get(e)
		if fade.Tween == nil {
			finished = append(finished, e)
			return
		}

		alpha, done := fade.Tween.Update(float32(clock.Delta))
		fade.Alpha = alpha
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		e.RemoveComponent(components.SpawnFade)
	}
}
