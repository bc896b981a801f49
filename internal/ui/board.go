package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"DrawSolutions/internal/geom"
)

// canvasSurface turns polylines into fyne line segments.
type canvasSurface struct {
	objects []fyne.CanvasObject
}

func (s *canvasSurface) Clear() {
	s.objects = nil
}

func (s *canvasSurface) Polyline(points []geom.Point, c color.NRGBA, width float64) error {
	for i := 1; i < len(points); i++ {
		p1, p2 := points[i-1], points[i]
		line := canvas.NewLine(c)
		line.StrokeWidth = float32(width)
		line.Position1 = fyne.NewPos(float32(p1.X), float32(p1.Y))
		line.Position2 = fyne.NewPos(float32(p2.X), float32(p2.Y))
		s.objects = append(s.objects, line)
	}
	return nil
}
