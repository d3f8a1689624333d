package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/magehorde/components"
	"github.com/automoto/magehorde/systems"
	"github.com/automoto/magehorde/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the setup menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	setupUI      *ui.SetupUI
	settings     components.SettingsData
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.setupUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.shouldStart = true
	}

	if ms.shouldStart {
		systems.SetCurrentSettings(ms.settings)
		ms.sceneChanger.ChangeScene(NewArenaScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.setupUI == nil {
		return
	}
	ms.setupUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.settings = systems.CurrentSettings()
	ms.setupUI = ui.NewSetupUI(
		&ms.settings,
		func() { ms.shouldStart = true },
		func() { os.Exit(0) },
	)
}
