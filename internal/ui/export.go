package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"DrawSolutions/internal/board"
)

// showExportDialog asks for a destination and exports the canvas there.
// Cancelling the dialog writes nothing.
func showExportDialog(win fyne.Window, b *board.Board, status *widget.Label) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if w == nil {
			return
		}
		path := w.URI().Path()
		// The board writes the file itself.
		if err := w.Close(); err != nil {
			dialog.ShowError(err, win)
			return
		}
		if err := b.Export(path); err != nil {
			status.SetText("Export failed")
			dialog.ShowError(err, win)
			return
		}
		status.SetText(fmt.Sprintf("Exported %s", filepath.Base(path)))
	}, win)
	d.SetFileName("drawing.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".bmp", ".pdf"}))
	d.Show()
}
