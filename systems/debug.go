package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/magehorde/components"
	"github.com/automoto/magehorde/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

var (
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
	debugAgentColor  = color.RGBA{255, 0, 0, 255}
	debugTouchColor  = color.RGBA{255, 255, 0, 255}
)

// DrawDebug outlines contact bodies and prints frame stats when the debug
// overlay is enabled (F3).
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDebug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	view := newViewport(cameraEntry, screen)

	var player *components.BodyData
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player = components.Body.Get(playerEntry)
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		pos := transform.WorldPosition(e)
		if !view.visible(pos, 0) {
			return
		}
		body := components.Body.Get(e)

		c := debugAgentColor
		if e.HasComponent(tags.Player) {
			c = debugPlayerColor
		} else if player != nil && overlaps(player.Object, body.Object) {
			c = debugTouchColor
		}

		// Body rectangle is centered on the entity position
		x, y := view.toScreen(math.NewVec2(pos.X-body.W/2, pos.Y+body.H/2))
		vector.StrokeRect(screen, float32(x), float32(y), float32(body.W*view.zoom), float32(body.H*view.zoom), 1, c, false)
	})

	cursorX, cursorY := ebiten.CursorPosition()
	cursor := view.toWorld(float64(cursorX), float64(cursorY))
	msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\nTick: %d\nEntities: %d\nCamera: %.1f, %.1f\nCursor: %.1f, %.1f",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		GetOrCreateClock(ecs).Ticks,
		ecs.World.Len(),
		view.center.X, view.center.Y,
		cursor.X, cursor.Y,
	)
	ebitenutil.DebugPrintAt(screen, msg, int(view.width)-180, 4)
}
