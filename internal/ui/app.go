package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"DrawSolutions/internal/board"
	"DrawSolutions/internal/logging"
)

// RunApp opens the main window and blocks until it is closed.
func RunApp(b *board.Board, log *zap.SugaredLogger) {
	log = logging.OrNop(log)
	myApp := app.New()
	myWindow := myApp.NewWindow("DrawSolutions")
	w, h := b.Size()
	myWindow.Resize(fyne.NewSize(float32(w)+100, float32(h)+100))

	status := widget.NewLabel("Ready")
	canvasWidget := NewBoardWidget(b, log.Named("ui"))
	tb, bar := newToolbar(myWindow, b, status)

	// "d" toggles the animation.
	myWindow.Canvas().SetOnTypedRune(func(r rune) {
		if r == 'd' || r == 'D' {
			tb.toggleAnimation()
		}
	})
	myWindow.SetOnClosed(func() {
		if b.Animating() {
			b.ToggleAnimation()
		}
	})

	content := container.NewBorder(bar, status, nil, nil, container.NewCenter(canvasWidget))
	myWindow.SetContent(content)
	log.Infow("window ready", "width", w, "height", h)
	myWindow.ShowAndRun()
}
