package render

import (
	"image/color"

	"DrawSolutions/internal/geom"
)

// Polyline is one recorded Surface.Polyline call.
type Polyline struct {
	Points []geom.Point
	Color  color.NRGBA
	Width  float64
}

// Recorder is a Surface that keeps the draw calls since the last Clear.
// It backs headless redraws and tests.
type Recorder struct {
	Lines  []Polyline
	Clears int
}

func (r *Recorder) Clear() {
	r.Lines = r.Lines[:0]
	r.Clears++
}

func (r *Recorder) Polyline(points []geom.Point, c color.NRGBA, width float64) error {
	r.Lines = append(r.Lines, Polyline{
		Points: append([]geom.Point(nil), points...),
		Color:  c,
		Width:  width,
	})
	return nil
}
