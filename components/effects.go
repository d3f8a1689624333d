package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpawnFadeData fades a freshly spawned sprite in. The component is removed
// once the tween finishes.
type SpawnFadeData struct {
	Tween *gween.Tween
	Alpha float32 // current alpha (0.0-1.0), read by the renderer
}

var SpawnFade = donburi.NewComponentType[SpawnFadeData]()
