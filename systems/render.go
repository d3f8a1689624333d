package systems

import (
	"sort"

	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	sprites = query.NewQuery(filter.Contains(
		components.Sprite,
		components.Depth,
		transform.Transform,
	))
)

type drawItem struct {
	entry *donburi.Entry
	z     float64
}

// Reused across frames to avoid allocating the sort buffer every draw
var drawList []drawItem

// DrawArena renders the floor and grid inside the arena bounds.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Layout
	if arena == nil {
		return
	}
	view := newViewport(cameraEntry, screen)

	left, top := view.toScreen(math.NewVec2(-arena.Width/2, arena.Height/2))
	right, bottom := view.toScreen(math.NewVec2(arena.Width/2, -arena.Height/2))
	vector.FillRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), cfg.HUD.FloorColor, false)

	spacing := cfg.HUD.GridSpacing
	if spacing <= 0 {
		return
	}
	for x := -arena.Width / 2; x <= arena.Width/2; x += spacing {
		sx, _ := view.toScreen(math.NewVec2(x, 0))
		if sx < 0 || sx > view.width {
			continue
		}
		vector.StrokeLine(screen, float32(sx), float32(top), float32(sx), float32(bottom), 1, cfg.HUD.GridColor, false)
	}
	for y := -arena.Height / 2; y <= arena.Height/2; y += spacing {
		_, sy := view.toScreen(math.NewVec2(0, y))
		if sy < 0 || sy > view.height {
			continue
		}
		vector.StrokeLine(screen, float32(left), float32(sy), float32(right), float32(sy), 1, cfg.HUD.GridColor, false)
	}
}

// DrawSprites renders every visible sprite back to front by depth.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	view := newViewport(cameraEntry, screen)

	drawList = drawList[:0]
	sprites.Each(ecs.World, func(e *donburi.Entry) {
		if components.Sprite.Get(e).Image == nil {
			return
		}
		// Viewport Culling
		if !view.visible(transform.WorldPosition(e), cfg.Camera.CullPadding) {
			return
		}
		drawList = append(drawList, drawItem{entry: e, z: components.Depth.Get(e).Z})
	})

	sort.SliceStable(drawList, func(i, j int) bool {
		return drawList[i].z < drawList[j].z
	})

	for _, item := range drawList {
		drawSprite(screen, view, item.entry)
	}
}

func drawSprite(screen *ebiten.Image, view viewport, e *donburi.Entry) {
	img := components.Sprite.Get(e).Image
	t := transform.Transform.Get(e)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterNearest

	// Anchor at the sprite center, then apply facing and walk-bob
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(t.LocalScale.X, t.LocalScale.Y)
	// World rotation is counter-clockwise with Y up, screen Y points down
	drawOp.GeoM.Rotate(-t.LocalRotation)
	drawOp.GeoM.Scale(view.zoom, view.zoom)

	x, y := view.toScreen(transform.WorldPosition(e))
	drawOp.GeoM.Translate(x, y)

	if e.HasComponent(components.SpawnFade) {
		drawOp.ColorScale.ScaleAlpha(components.SpawnFade.Get(e).Alpha)
	}

	screen.DrawImage(img, drawOp)
}
