package board

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawSolutions/internal/config"
	"DrawSolutions/internal/deform"
	"DrawSolutions/internal/export"
	"DrawSolutions/internal/geom"
	"DrawSolutions/internal/render"
	"DrawSolutions/internal/state"
)

type manualTicker struct{ ch chan time.Time }

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               {}

// harness drives a Board with a ticker the test fires by hand.
type harness struct {
	*Board
	tmu     sync.Mutex
	ticker  *manualTicker
	redraws atomic.Int32
	ticked  chan struct{}
}

func newHarness(t *testing.T, mutate func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.NoiseSeed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())

	h := &harness{ticked: make(chan struct{}, 16)}
	h.Board = New(cfg, WithTicker(func(time.Duration) state.Ticker {
		h.tmu.Lock()
		defer h.tmu.Unlock()
		h.ticker = &manualTicker{ch: make(chan time.Time)}
		return h.ticker
	}))
	h.OnRedraw = func() { h.redraws.Add(1) }
	// Signal ticks separately from other redraw requests.
	h.clock.OnTick = func(float64) {
		h.requestRedraw()
		h.ticked <- struct{}{}
	}
	return h
}

func (h *harness) tick(t *testing.T) {
	t.Helper()
	h.tmu.Lock()
	tk := h.ticker
	h.tmu.Unlock()
	require.NotNil(t, tk, "animation never started")
	tk.ch <- time.Now()
	select {
	case <-h.ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("tick not processed")
	}
}

func (h *harness) draw(points ...geom.Point) {
	h.PointerDown(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		h.PointerMove(p.X, p.Y)
	}
	h.PointerUp()
}

func TestDrawStrokeInterpolates(t *testing.T) {
	h := newHarness(t, nil)
	h.draw(geom.Pt(0, 0), geom.Pt(10, 0))

	strokes := h.Strokes()
	require.Len(t, strokes, 1)
	pts := strokes[0].Points
	assert.Equal(t, geom.Pt(0, 0), pts[0])
	assert.Equal(t, geom.Pt(10, 0), pts[len(pts)-1])
	assert.Len(t, pts, 7, "start point, 5 interpolants, end point")
	assert.Positive(t, h.redraws.Load())
}

func TestSingleClickIsDiscarded(t *testing.T) {
	h := newHarness(t, nil)
	h.PointerDown(5, 5)
	h.PointerMove(5, 5)
	h.PointerUp()
	assert.Zero(t, h.StrokeCount())
}

func TestPointerWithoutDownIsNoop(t *testing.T) {
	h := newHarness(t, nil)
	h.PointerMove(1, 1)
	h.PointerUp()
	assert.Zero(t, h.StrokeCount())
}

func TestStrokeKeepsColorFromStart(t *testing.T) {
	h := newHarness(t, nil)
	red := color.NRGBA{R: 255, A: 255}
	h.SetColor(red)
	h.SetWidth(6)
	h.PointerDown(0, 0)
	h.PointerMove(3, 0)
	h.SetColor(color.NRGBA{B: 255, A: 255})
	h.SetWidth(1)
	h.PointerMove(6, 0)
	h.PointerUp()

	st := h.Strokes()[0]
	assert.Equal(t, red, st.Color)
	assert.Equal(t, 6, st.Width)
}

func TestSelectionSetters(t *testing.T) {
	h := newHarness(t, nil)
	h.SetWidth(99)
	assert.Equal(t, state.MaxWidth, h.Width())
	h.SetWidth(-3)
	assert.Equal(t, state.MinWidth, h.Width())

	h.SetColor(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, h.Color())

	h.SetPatternName("spiral")
	assert.Equal(t, deform.Spiral, h.Pattern())
	h.SetPatternName("no-such-pattern")
	assert.Equal(t, deform.None, h.Pattern())
	h.SetPattern(deform.Pattern(77))
	assert.Equal(t, deform.None, h.Pattern())
}

func TestToggleWithoutTickKeepsPhase(t *testing.T) {
	h := newHarness(t, nil)
	assert.True(t, h.ToggleAnimation())
	assert.False(t, h.ToggleAnimation())
	assert.Zero(t, h.Phase())
}

func TestAnimationTicksAdvancePhase(t *testing.T) {
	h := newHarness(t, nil)
	h.ToggleAnimation()
	before := h.redraws.Load()
	h.tick(t)
	h.tick(t)
	assert.InDelta(t, 0.10, h.Phase(), 1e-12)
	assert.Equal(t, before+2, h.redraws.Load())

	h.ToggleAnimation()
	assert.False(t, h.Animating())
	assert.InDelta(t, 0.10, h.Phase(), 1e-12, "pause keeps phase")
}

func TestClearResetsEverything(t *testing.T) {
	h := newHarness(t, nil)
	h.draw(geom.Pt(0, 0), geom.Pt(20, 20))
	h.PointerDown(50, 50)
	h.ToggleAnimation()
	h.tick(t)
	require.NotZero(t, h.Phase())

	h.Clear()
	assert.Zero(t, h.StrokeCount())
	assert.Zero(t, h.Phase())
	assert.False(t, h.Animating())
	assert.Nil(t, h.Snapshot(0).Current)
}

func TestClearWhenStopped(t *testing.T) {
	h := newHarness(t, nil)
	h.draw(geom.Pt(0, 0), geom.Pt(20, 20))
	h.Clear()
	assert.Zero(t, h.StrokeCount())
	assert.Zero(t, h.Phase())
}

func TestRedrawSinusoidalEndToEnd(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.MaxGap = 500 })
	h.SetPattern(deform.Sinusoidal)
	h.draw(geom.Pt(0, 0), geom.Pt(0, 100))

	rec := &render.Recorder{}
	require.NoError(t, h.Redraw(rec))
	require.Len(t, rec.Lines, 1)
	pts := rec.Lines[0].Points
	require.Len(t, pts, 2)
	assert.Equal(t, geom.Pt(0, 0), pts[0])
	assert.InDelta(t, 20*math.Sin(2), pts[1].X, 1e-12)
	assert.InDelta(t, 18.19, pts[1].X, 0.01)
	assert.Equal(t, 100.0, pts[1].Y)

	// Stored points stay undeformed.
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(0, 100)}, h.Strokes()[0].Points)
}

func TestRedrawIncludesStrokeInProgress(t *testing.T) {
	h := newHarness(t, nil)
	h.SetColor(color.NRGBA{G: 200, A: 255})
	h.PointerDown(0, 0)
	h.PointerMove(1, 1)
	h.SetWidth(9)

	rec := &render.Recorder{}
	require.NoError(t, h.Redraw(rec))
	require.Len(t, rec.Lines, 1)
	assert.Equal(t, 9.0, rec.Lines[0].Width)
	assert.Zero(t, h.StrokeCount())
}

func TestExportUsesLastLivePhase(t *testing.T) {
	h := newHarness(t, nil)
	assert.Zero(t, h.exportPhase(), "nothing animated yet")

	h.ToggleAnimation()
	h.tick(t)
	require.NoError(t, h.Redraw(&render.Recorder{}))
	h.tick(t)

	assert.InDelta(t, 0.05, h.exportPhase(), 1e-12)
	assert.InDelta(t, 0.10, h.Phase(), 1e-12)
	h.ToggleAnimation()

	h.Clear()
	assert.Zero(t, h.exportPhase())
}

func TestExportPhaseZero(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.ExportPhase = config.ExportZero })
	h.ToggleAnimation()
	h.tick(t)
	require.NoError(t, h.Redraw(&render.Recorder{}))
	h.ToggleAnimation()
	assert.Zero(t, h.exportPhase())
}

func TestExportWritesCanvasSizedPNG(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.MaxGap = 500 })
	h.SetPattern(deform.Sinusoidal)
	h.draw(geom.Pt(0, 0), geom.Pt(0, 100))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, h.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	w, ht := h.Size()
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, ht, img.Bounds().Dy())

	r, _, _, _ := img.At(9, 50).RGBA()
	assert.Less(t, r, uint32(0x8000), "deformed line midpoint is inked")
	r, _, _, _ = img.At(400, 300).RGBA()
	assert.Equal(t, uint32(0xffff), r, "background is white")
}

func TestExportToWriter(t *testing.T) {
	h := newHarness(t, nil)
	h.draw(geom.Pt(10, 10), geom.Pt(100, 100))
	var buf bytes.Buffer
	require.NoError(t, h.ExportTo(&buf, export.BMP))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("BM")))
}

func TestExportEmptyPathIsNoop(t *testing.T) {
	h := newHarness(t, nil)
	assert.NoError(t, h.Export(""))
}

func TestExportFailureLeavesStateAlone(t *testing.T) {
	h := newHarness(t, nil)
	h.draw(geom.Pt(0, 0), geom.Pt(30, 30))
	h.ToggleAnimation()
	h.tick(t)
	h.ToggleAnimation()
	phase := h.Phase()

	err := h.Export(filepath.Join(t.TempDir(), "missing", "out.png"))
	require.Error(t, err)
	var ee *export.Error
	assert.True(t, errors.As(err, &ee))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Equal(t, 1, h.StrokeCount())
	assert.Equal(t, phase, h.Phase())
}
