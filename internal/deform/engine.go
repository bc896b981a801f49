// Package deform computes the animated coordinate warps applied to strokes
// at render time. Stored stroke points are never modified; every call
// returns fresh points.
package deform

import (
	"runtime"

	"github.com/aquilax/go-perlin"
	"golang.org/x/sync/errgroup"

	"DrawSolutions/internal/geom"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinOct   = 3

	// Sequences shorter than this are deformed on the calling goroutine.
	parallelThreshold = 4096
	chunkSize         = 1024
)

// Engine holds the inputs shared by every formula: the canvas center used
// by the radial patterns and the seeded noise field.
type Engine struct {
	center geom.Point
	seed   int64
	noise  *perlin.Perlin
}

// NewEngine returns an engine for a canvas of the given size. seed fixes
// the noise field for the lifetime of the engine.
func NewEngine(width, height int, seed int64) *Engine {
	return &Engine{
		center: geom.Pt(float64(width)/2, float64(height)/2),
		seed:   seed,
		noise:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, seed),
	}
}

// Center returns the point the radial patterns are centered on.
func (e *Engine) Center() geom.Point { return e.center }

// Seed returns the noise seed.
func (e *Engine) Seed() int64 { return e.seed }

// Deform displaces p according to pattern at the given phase.
func (e *Engine) Deform(p geom.Point, pattern Pattern, phase float64) geom.Point {
	dx, dy := offset(pattern)(e, p.X, p.Y, phase)
	return geom.Point{X: p.X + dx, Y: p.Y + dy}
}

// Apply deforms every point of points independently and returns the result
// in a new slice of the same length and order. Long sequences are split
// across goroutines.
func (e *Engine) Apply(points []geom.Point, pattern Pattern, phase float64) []geom.Point {
	out := make([]geom.Point, len(points))
	f := offset(pattern)
	if len(points) < parallelThreshold {
		e.apply(f, points, out, phase)
		return out
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(points); lo += chunkSize {
		hi := min(lo+chunkSize, len(points))
		g.Go(func() error {
			e.apply(f, points[lo:hi], out[lo:hi], phase)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *Engine) apply(f offsetFunc, in, out []geom.Point, phase float64) {
	for i, p := range in {
		dx, dy := f(e, p.X, p.Y, phase)
		out[i] = geom.Point{X: p.X + dx, Y: p.Y + dy}
	}
}
