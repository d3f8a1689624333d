package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image *ebiten.Image
	Name  string // asset name, used by the debug overlay
}

var Sprite = donburi.NewComponentType[SpriteData]()
