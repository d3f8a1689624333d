package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/fonts"
	"github.com/automoto/magehorde/scenes"
	"github.com/automoto/magehorde/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	agents := flag.Int("agents", 0, "Horde size (0 = saved setting or arena default)")
	seed := flag.Int64("seed", 0, "Random seed for the horde (0 = time based)")
	skipMenu := flag.Bool("skipmenu", false, "Skip the setup menu and start in the arena")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Seed = *seed
	config.Debug.Profile = *profileMode

	switch config.Debug.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("Unknown profile mode %q (want cpu or mem)", config.Debug.Profile)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Command line wins over the saved setting for this run only
	if *agents > 0 {
		settings := systems.CurrentSettings()
		settings.HordeSize = systems.ClampHordeSize(*agents)
		systems.SetCurrentSettings(settings)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
