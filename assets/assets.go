package assets

import (
	"bytes"
	"embed"
	"fmt"

	cfg "github.com/automoto/magehorde/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

const (
	MageSprite   = "mage.png"
	OrcSprite    = "orc.png"
	KnightSprite = "knight.png"
)

// AgentSprite returns the image file name for an agent kind
func AgentSprite(kind cfg.AgentKind) string {
	if kind == cfg.AgentKnight {
		return KnightSprite
	}
	return OrcSprite
}

type SpriteLoader struct {
	cache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// MustLoadImage decodes an embedded image once and caches it by name.
// Every horde member of one kind shares the same *ebiten.Image so draws batch.
func (l *SpriteLoader) MustLoadImage(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	path := "images/" + name
	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[name] = img

	return img
}

var spriteLoader = NewSpriteLoader()

func GetSprite(name string) *ebiten.Image {
	return spriteLoader.MustLoadImage(name)
}

// PreloadSprites decodes every sprite up front so the first frame doesn't stall
func PreloadSprites() {
	for _, name := range []string{MageSprite, OrcSprite, KnightSprite} {
		spriteLoader.MustLoadImage(name)
	}
}
