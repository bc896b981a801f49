package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"DrawSolutions/internal/board"
	"DrawSolutions/internal/logging"
)

// BoardWidget shows the deformed strokes and forwards pointer input to the
// board.
type BoardWidget struct {
	widget.BaseWidget
	board   *board.Board
	log     *zap.SugaredLogger
	drawing bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board, log *zap.SugaredLogger) *BoardWidget {
	w := &BoardWidget{board: b, log: logging.OrNop(log)}
	w.ExtendBaseWidget(w)
	// Ticks arrive on the clock goroutine.
	b.OnRedraw = func() { fyne.Do(w.Refresh) }
	return w
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.drawing = true
	w.board.PointerDown(float64(e.Position.X), float64(e.Position.Y))
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.release()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if w.drawing {
		w.board.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (w *BoardWidget) DragEnd() {
	w.release()
}

func (w *BoardWidget) release() {
	if !w.drawing {
		return
	}
	w.drawing = false
	w.board.PointerUp()
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{
		widget:     w,
		background: canvas.NewRectangle(color.White),
		surface:    &canvasSurface{},
	}
	r.redraw()
	return r
}

type boardWidgetRenderer struct {
	widget     *BoardWidget
	background *canvas.Rectangle
	surface    *canvasSurface
}

func (r *boardWidgetRenderer) redraw() {
	if err := r.widget.board.Redraw(r.surface); err != nil {
		r.widget.log.Errorw("redraw failed", "error", err)
	}
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.surface.objects)+1)
	objects = append(objects, r.background)
	return append(objects, r.surface.objects...)
}

func (r *boardWidgetRenderer) Refresh() {
	r.redraw()
	canvas.Refresh(r.widget)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	w, h := r.widget.board.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardWidgetRenderer) Destroy() {}
