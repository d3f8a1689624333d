package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/magehorde/components"
	"github.com/automoto/magehorde/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI holds the ebitenui interface for the pre-game setup menu
type SetupUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Callbacks
	OnStart func()
	OnQuit  func()

	// Widget references for updates
	hordeButton *widget.Button
	debugButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSetupUI creates the setup menu bound to settings. Buttons mutate
// settings in place and persist them.
func NewSetupUI(settings *components.SettingsData, onStart, onQuit func()) *SetupUI {
	sui := &SetupUI{
		Settings: settings,
		OnStart:  onStart,
		OnQuit:   onQuit,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SetupUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("MAGEHORDE", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.hordeButton = sui.newButton(HordeLabel(sui.Settings.HordeSize), sui.buttonImage(), func() {
		sui.Settings.HordeSize = systems.NextHordeSize(sui.Settings.HordeSize)
		systems.SaveCurrentSettings(sui.Settings)
		sui.UpdateUI()
	})
	contentContainer.AddChild(sui.hordeButton)

	sui.debugButton = sui.newButton(DebugLabel(sui.Settings.ShowDebug), sui.buttonImage(), func() {
		sui.Settings.ShowDebug = !sui.Settings.ShowDebug
		systems.SaveCurrentSettings(sui.Settings)
		sui.UpdateUI()
	})
	contentContainer.AddChild(sui.debugButton)

	contentContainer.AddChild(sui.newButton("Start", sui.startButtonImage(), func() {
		if sui.OnStart != nil {
			sui.OnStart()
		}
	}))
	contentContainer.AddChild(sui.newButton("Quit", sui.buttonImage(), func() {
		if sui.OnQuit != nil {
			sui.OnQuit()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Enter: Start   WASD: Move   Esc: Pause", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SetupUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 22),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Update advances ebitenui input handling
func (sui *SetupUI) Update() {
	sui.UI.Update()
}

// UpdateUI refreshes button labels from the settings
func (sui *SetupUI) UpdateUI() {
	if sui.hordeButton != nil {
		if textWidget := sui.hordeButton.Text(); textWidget != nil {
			textWidget.Label = HordeLabel(sui.Settings.HordeSize)
		}
	}
	if sui.debugButton != nil {
		if textWidget := sui.debugButton.Text(); textWidget != nil {
			textWidget.Label = DebugLabel(sui.Settings.ShowDebug)
		}
	}
}

// HordeLabel is the horde size button caption
func HordeLabel(size int) string {
	if size <= 0 {
		return "Horde: map default"
	}
	return fmt.Sprintf("Horde: %d", size)
}

// DebugLabel is the debug overlay button caption
func DebugLabel(on bool) string {
	if on {
		return "Debug overlay: on"
	}
	return "Debug overlay: off"
}

func (sui *SetupUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SetupUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
