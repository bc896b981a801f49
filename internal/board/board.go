// Package board ties the stroke store, animation clock, deformation engine
// and renderer into the single object a UI shell drives.
package board

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"go.uber.org/zap"

	"DrawSolutions/internal/config"
	"DrawSolutions/internal/deform"
	"DrawSolutions/internal/export"
	"DrawSolutions/internal/geom"
	"DrawSolutions/internal/logging"
	"DrawSolutions/internal/render"
	"DrawSolutions/internal/state"
)

// Board is the drawing core. Its methods are safe to call from the UI
// goroutine while the animation clock ticks on its own goroutine.
type Board struct {
	cfg      config.Config
	store    *state.StrokeStore
	clock    *state.AnimationClock
	engine   *deform.Engine
	renderer *render.Renderer
	log      *zap.SugaredLogger

	mu        sync.Mutex
	pattern   deform.Pattern
	color     color.NRGBA
	width     int
	lastPhase float64
	redrawn   bool

	// OnRedraw is called whenever what is on screen is stale. It may run
	// on the animation goroutine.
	OnRedraw func()
}

type options struct {
	log       *zap.SugaredLogger
	newTicker state.NewTickerFunc
}

// Option configures a Board.
type Option func(*options)

func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) { o.log = log }
}

// WithTicker replaces the animation ticker source.
func WithTicker(f state.NewTickerFunc) Option {
	return func(o *options) { o.newTicker = f }
}

// New builds a Board from cfg. cfg is expected to be valid.
func New(cfg config.Config, opts ...Option) *Board {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.OrNop(o.log)

	clockOpts := []state.ClockOption{state.WithClockLogger(log.Named("clock"))}
	if o.newTicker != nil {
		clockOpts = append(clockOpts, state.WithTicker(o.newTicker))
	}

	engine := deform.NewEngine(cfg.CanvasWidth, cfg.CanvasHeight, cfg.NoiseSeed)
	b := &Board{
		cfg:      cfg,
		store:    state.NewStrokeStore(log.Named("store")),
		clock:    state.NewAnimationClock(cfg.TickInterval, cfg.PhaseStep, clockOpts...),
		engine:   engine,
		renderer: render.NewRenderer(engine),
		log:      log,
		pattern:  cfg.Pattern(),
		color:    cfg.Color(),
		width:    state.ClampWidth(cfg.DefaultWidth),
	}
	b.store.OnClear = b.clock.Reset
	b.clock.OnTick = func(float64) { b.requestRedraw() }
	return b
}

func (b *Board) requestRedraw() {
	if b.OnRedraw != nil {
		b.OnRedraw()
	}
}

// Size returns the fixed canvas dimensions.
func (b *Board) Size() (width, height int) {
	return b.cfg.CanvasWidth, b.cfg.CanvasHeight
}

// PointerDown starts a new stroke at (x, y) with the current color and
// width.
func (b *Board) PointerDown(x, y float64) {
	b.mu.Lock()
	c, w := b.color, b.width
	b.mu.Unlock()

	id := b.store.BeginStroke(geom.Pt(x, y), c, w)
	b.log.Debugw("stroke started", "id", id, "x", x, "y", y)
	b.requestRedraw()
}

// PointerMove extends the stroke in progress to (x, y), filling gaps wider
// than the configured maximum.
func (b *Board) PointerMove(x, y float64) {
	last, ok := b.store.LastPoint()
	if !ok {
		return
	}
	if b.store.ExtendCurrent(geom.Interpolate(last, geom.Pt(x, y), b.cfg.MaxGap)...) > 0 {
		b.requestRedraw()
	}
}

// PointerUp finalizes the stroke in progress.
func (b *Board) PointerUp() {
	if _, ok := b.store.FinalizeCurrent(); ok {
		b.requestRedraw()
	}
}

func (b *Board) SetPattern(p deform.Pattern) {
	if !p.Valid() {
		p = deform.None
	}
	b.mu.Lock()
	b.pattern = p
	b.mu.Unlock()
	b.log.Infow("pattern selected", "pattern", p.String())
	b.requestRedraw()
}

// SetPatternName selects a pattern by name; unknown names select none.
func (b *Board) SetPatternName(name string) {
	b.SetPattern(deform.ParsePattern(name))
}

func (b *Board) Pattern() deform.Pattern {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pattern
}

// SetColor sets the color for strokes started from now on.
func (b *Board) SetColor(c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = 255
	b.mu.Lock()
	b.color = nc
	b.mu.Unlock()
}

func (b *Board) Color() color.NRGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.color
}

// SetWidth sets the width for strokes started from now on, clamped to
// the allowed range.
func (b *Board) SetWidth(n int) {
	b.mu.Lock()
	b.width = state.ClampWidth(n)
	b.mu.Unlock()
}

func (b *Board) Width() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

// ToggleAnimation starts or stops the animation clock and reports whether
// it is now running.
func (b *Board) ToggleAnimation() bool {
	return b.clock.Toggle()
}

func (b *Board) Animating() bool {
	return b.clock.Running()
}

func (b *Board) Phase() float64 {
	return b.clock.Phase()
}

// Clear removes all strokes, stops the animation and resets the phase.
func (b *Board) Clear() {
	b.store.Clear()
	b.mu.Lock()
	b.lastPhase = 0
	b.redrawn = false
	b.mu.Unlock()
	b.requestRedraw()
}

// StrokeCount returns the number of finalized strokes.
func (b *Board) StrokeCount() int {
	return b.store.Len()
}

// Strokes returns the finalized strokes in drawing order.
func (b *Board) Strokes() []state.Stroke {
	return b.store.Strokes()
}

// Snapshot captures the store and selection at the given phase.
func (b *Board) Snapshot(phase float64) render.Frame {
	b.mu.Lock()
	f := render.Frame{
		CurrentColor: b.color,
		CurrentWidth: b.width,
		Pattern:      b.pattern,
		Phase:        phase,
	}
	b.mu.Unlock()

	f.Strokes = b.store.Strokes()
	if cur, ok := b.store.Current(); ok {
		f.Current = &cur
	}
	return f
}

// Redraw renders the current state onto s at the current phase.
func (b *Board) Redraw(s render.Surface) error {
	phase := b.clock.Phase()
	if _, err := b.renderer.Draw(s, b.Snapshot(phase)); err != nil {
		return fmt.Errorf("redraw: %w", err)
	}
	b.mu.Lock()
	b.lastPhase = phase
	b.redrawn = true
	b.mu.Unlock()
	return nil
}

// exportPhase is the phase of the last live redraw, or of the clock if
// nothing was redrawn yet.
func (b *Board) exportPhase() float64 {
	if b.cfg.ExportPhase == config.ExportZero {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.redrawn {
		return b.lastPhase
	}
	return b.clock.Phase()
}

// Image renders the canvas offscreen on a white background.
func (b *Board) Image() (image.Image, error) {
	return b.renderer.Rasterize(b.Snapshot(b.exportPhase()), b.cfg.CanvasWidth, b.cfg.CanvasHeight)
}

// Export renders the canvas and writes it to path. An empty path is a
// cancelled save and writes nothing. Failures leave the board untouched.
func (b *Board) Export(path string) error {
	if path == "" {
		b.log.Debug("export cancelled")
		return nil
	}
	img, err := b.Image()
	if err != nil {
		return &export.Error{Op: "render", Path: path, Err: err}
	}
	if err := export.WriteFile(path, img); err != nil {
		b.log.Warnw("export failed", "path", path, "error", err)
		return err
	}
	b.log.Infow("canvas exported", "path", path, "strokes", b.store.Len())
	return nil
}

// ExportTo renders the canvas and encodes it to w.
func (b *Board) ExportTo(w io.Writer, f export.Format) error {
	img, err := b.Image()
	if err != nil {
		return err
	}
	if err := export.Encode(w, img, f); err != nil {
		b.log.Warnw("export failed", "format", f.String(), "error", err)
		return fmt.Errorf("export %s: %w", f, err)
	}
	b.log.Infow("canvas exported", "format", f.String(), "strokes", b.store.Len())
	return nil
}
