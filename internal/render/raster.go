package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"DrawSolutions/internal/geom"
)

// RasterSurface draws into an offscreen RGBA buffer with a white
// background.
type RasterSurface struct {
	ctx *gg.Context
}

func NewRasterSurface(width, height int) *RasterSurface {
	ctx := gg.NewContext(width, height)
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	ctx.ClearWithColor(gg.White)
	return &RasterSurface{ctx: ctx}
}

func (r *RasterSurface) Clear() {
	r.ctx.ClearPath()
	r.ctx.ClearWithColor(gg.White)
}

func (r *RasterSurface) Polyline(points []geom.Point, c color.NRGBA, width float64) error {
	if len(points) < 2 {
		return nil
	}
	r.ctx.SetColor(c)
	r.ctx.SetLineWidth(width)
	r.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.ctx.LineTo(p.X, p.Y)
	}
	if err := r.ctx.Stroke(); err != nil {
		return fmt.Errorf("stroke %d points: %w", len(points), err)
	}
	return nil
}

func (r *RasterSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.ctx.Width(), r.ctx.Height())
}

// Image returns the rendered buffer.
func (r *RasterSurface) Image() image.Image {
	return r.ctx.Image()
}

// Close releases the drawing context.
func (r *RasterSurface) Close() error {
	return r.ctx.Close()
}

// Rasterize renders f into a new width×height image.
func (r *Renderer) Rasterize(f Frame, width, height int) (image.Image, error) {
	surf := NewRasterSurface(width, height)
	defer surf.Close()
	if _, err := r.Draw(surf, f); err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return surf.Image(), nil
}
