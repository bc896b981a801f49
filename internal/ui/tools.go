package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"DrawSolutions/internal/board"
	"DrawSolutions/internal/deform"
	"DrawSolutions/internal/state"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 160, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 200, A: 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbar holds the controls whose state must follow the board.
type toolbar struct {
	board   *board.Board
	current *canvas.Rectangle
	animate *widget.Button
	status  *widget.Label
}

func newToolbar(win fyne.Window, b *board.Board, status *widget.Label) (*toolbar, fyne.CanvasObject) {
	t := &toolbar{
		board:   b,
		current: canvas.NewRectangle(b.Color()),
		status:  status,
	}
	t.current.SetMinSize(fyne.NewSize(28, 28))

	// --- Pattern ---
	patterns := widget.NewSelect(deform.Names(), func(name string) {
		b.SetPatternName(name)
	})
	patterns.SetSelected(b.Pattern().String())

	// --- Color Palette ---
	pick := func(c color.Color) {
		b.SetColor(c)
		t.current.FillColor = b.Color()
		t.current.Refresh()
	}
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, pick))
	}
	more := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		d := dialog.NewColorPicker("Stroke color", "Pick a color", pick, win)
		d.Advanced = true
		d.Show()
	})

	// --- Stroke Width Slider ---
	width := widget.NewSlider(state.MinWidth, state.MaxWidth)
	width.Step = 1
	width.SetValue(float64(b.Width()))
	width.OnChanged = func(v float64) {
		b.SetWidth(int(v))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), width)

	t.animate = widget.NewButtonWithIcon("Animate", theme.MediaPlayIcon(), t.toggleAnimation)
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		b.Clear()
		t.syncAnimate()
		status.SetText("Cleared")
	})
	save := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		showExportDialog(win, b, status)
	})

	// --- Assemble everything ---
	return t, container.NewHBox(
		widget.NewLabel("Pattern:"),
		patterns,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		t.current,
		swatches,
		more,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderContainer,
		widget.NewSeparator(),
		t.animate,
		clearBtn,
		layout.NewSpacer(),
		save,
	)
}

func (t *toolbar) toggleAnimation() {
	if t.board.ToggleAnimation() {
		t.status.SetText("Animating")
	} else {
		t.status.SetText("Paused")
	}
	t.syncAnimate()
}

func (t *toolbar) syncAnimate() {
	if t.board.Animating() {
		t.animate.SetText("Pause")
		t.animate.SetIcon(theme.MediaPauseIcon())
	} else {
		t.animate.SetText("Animate")
		t.animate.SetIcon(theme.MediaPlayIcon())
	}
}
