package systems

import (
	"github.com/automoto/magehorde/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// viewport projects y-up world coordinates onto the y-down screen
type viewport struct {
	center math.Vec2
	zoom   float64
	width  float64
	height float64
}

func newViewport(cameraEntry *donburi.Entry, screen *ebiten.Image) viewport {
	zoom := components.Camera.Get(cameraEntry).Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return viewport{
		center: transform.WorldPosition(cameraEntry),
		zoom:   zoom,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}
}

func (v viewport) toScreen(p math.Vec2) (x, y float64) {
	x = (p.X-v.center.X)*v.zoom + v.width/2
	y = -(p.Y-v.center.Y)*v.zoom + v.height/2
	return x, y
}

func (v viewport) toWorld(x, y float64) math.Vec2 {
	return math.NewVec2(
		(x-v.width/2)/v.zoom+v.center.X,
		-(y-v.height/2)/v.zoom+v.center.Y,
	)
}

// visible reports whether p lies within the view, grown by padding world units
func (v viewport) visible(p math.Vec2, padding float64) bool {
	halfW := v.width/(2*v.zoom) + padding
	halfH := v.height/(2*v.zoom) + padding
	return p.X >= v.center.X-halfW && p.X <= v.center.X+halfW &&
		p.Y >= v.center.Y-halfH && p.Y <= v.center.Y+halfH
}
