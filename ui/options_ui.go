package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// option is one adjustable setting row.
type option struct {
	name  string
	value func(s *systems.SavedSettings) string
	next  func(s *systems.SavedSettings)
}

var options = []option{
	{
		name:  "Show FPS",
		value: func(s *systems.SavedSettings) string { return onOff(s.ShowFPS) },
		next:  func(s *systems.SavedSettings) { s.ShowFPS = !s.ShowFPS },
	},
	{
		name:  "Fullscreen",
		value: func(s *systems.SavedSettings) string { return onOff(s.Fullscreen) },
		next:  func(s *systems.SavedSettings) { s.Fullscreen = !s.Fullscreen },
	},
	{
		name: "Resolution",
		value: func(s *systems.SavedSettings) string {
			res := cfg.SettingsMenu.Resolutions
			if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(res) {
				return "?"
			}
			return res[s.ResolutionIndex].Label
		},
		next: func(s *systems.SavedSettings) {
			s.ResolutionIndex = (s.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
		},
	},
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// OptionsUI edits a SavedSettings value in place.
type OptionsUI struct {
	UI *ebitenui.UI

	OnChange func(s *systems.SavedSettings)
	OnGoBack func()

	settings    *systems.SavedSettings
	valueLabels []*widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewOptionsUI(settings *systems.SavedSettings, onChange func(*systems.SavedSettings), onGoBack func()) *OptionsUI {
	ui := &OptionsUI{
		OnChange: onChange,
		OnGoBack: onGoBack,
		settings: settings,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *OptionsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *OptionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("OPTIONS", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i := range options {
		contentContainer.AddChild(ui.buildRow(i))
	}

	contentContainer.AddChild(ui.newButton("Back", func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *OptionsUI) buildRow(i int) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(ui.rowText(i), &ui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorNormal,
		}),
	)
	ui.valueLabels = append(ui.valueLabels, valueLabel)

	row.AddChild(ui.newButton("Change", func() { ui.Cycle(i) }))
	row.AddChild(valueLabel)
	return row
}

func (ui *OptionsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Menu.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColorNormal,
			Hover:   cfg.Menu.TextColorSelected,
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *OptionsUI) rowText(i int) string {
	return options[i].name + ": " + options[i].value(ui.settings)
}

// Cycle advances option i to its next value and reports the change.
func (ui *OptionsUI) Cycle(i int) {
	options[i].next(ui.settings)
	ui.Refresh()
	if ui.OnChange != nil {
		ui.OnChange(ui.settings)
	}
}

// Refresh rewrites every row from the current settings.
func (ui *OptionsUI) Refresh() {
	for i, l := range ui.valueLabels {
		l.Label = ui.rowText(i)
	}
}

// Rows returns the text of each setting row.
func (ui *OptionsUI) Rows() []string {
	rows := make([]string, len(options))
	for i := range options {
		rows[i] = ui.rowText(i)
	}
	return rows
}

func (ui *OptionsUI) Update() {
	ui.UI.Update()
}

func (ui *OptionsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
