// Package render draws deformed strokes onto a Surface. The same traversal
// feeds the live canvas and offscreen export.
package render

import (
	"image/color"

	"DrawSolutions/internal/deform"
	"DrawSolutions/internal/geom"
	"DrawSolutions/internal/state"
)

// Surface receives draw calls. Polyline draws connected segments through
// points in order.
type Surface interface {
	Clear()
	Polyline(points []geom.Point, c color.NRGBA, width float64) error
}

// Frame is an immutable snapshot of everything a redraw needs.
type Frame struct {
	Strokes []state.Stroke
	// Current is the stroke in progress, if any. Its own color and width
	// are ignored; CurrentColor and CurrentWidth are used instead.
	Current      *state.Stroke
	CurrentColor color.NRGBA
	CurrentWidth int
	Pattern      deform.Pattern
	Phase        float64
}

// Renderer applies the deformation engine to a Frame and draws it.
type Renderer struct {
	engine *deform.Engine
}

func NewRenderer(engine *deform.Engine) *Renderer {
	return &Renderer{engine: engine}
}

// Draw clears s and draws every finalized stroke in store order, followed
// by the stroke in progress. Strokes with fewer than two points are
// skipped. It returns the number of strokes drawn.
func (r *Renderer) Draw(s Surface, f Frame) (int, error) {
	s.Clear()
	drawn := 0
	for _, st := range f.Strokes {
		ok, err := r.stroke(s, st.Points, st.Color, st.Width, f)
		if err != nil {
			return drawn, err
		}
		if ok {
			drawn++
		}
	}
	if f.Current != nil {
		ok, err := r.stroke(s, f.Current.Points, f.CurrentColor, f.CurrentWidth, f)
		if err != nil {
			return drawn, err
		}
		if ok {
			drawn++
		}
	}
	return drawn, nil
}

func (r *Renderer) stroke(s Surface, points []geom.Point, c color.NRGBA, width int, f Frame) (bool, error) {
	if len(points) < 2 {
		return false, nil
	}
	return true, s.Polyline(r.engine.Apply(points, f.Pattern, f.Phase), c, float64(width))
}
