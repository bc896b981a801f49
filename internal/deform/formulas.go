package deform

import "math"

// offsetFunc computes the displacement of (x, y) at phase phi.
type offsetFunc func(e *Engine, x, y, phi float64) (dx, dy float64)

var offsets = [...]offsetFunc{
	None:       identity,
	Sinusoidal: sinusoidal,
	Circular:   circular,
	Spiral:     spiral,
	Waves:      waves,
	Turbulence: turbulence,
	Pulsar:     pulsar,
	Fractal:    fractal,
	Noise:      noise,
	Crystal:    crystal,
	Vortex:     vortex,
	Cell:       cell,
}

func identity(_ *Engine, _, _, _ float64) (float64, float64) {
	return 0, 0
}

func sinusoidal(_ *Engine, _, y, phi float64) (float64, float64) {
	return 20 * math.Sin((y+phi)*0.02), 0
}

func circular(_ *Engine, x, y, phi float64) (float64, float64) {
	return 15 * math.Cos(x*0.02+phi), 15 * math.Sin(y*0.02+phi)
}

func spiral(_ *Engine, x, y, phi float64) (float64, float64) {
	r := math.Sqrt(x*x + y*y)
	return 10 * math.Cos(r*0.02+phi), 10 * math.Sin(r*0.02+phi)
}

func waves(_ *Engine, x, y, phi float64) (float64, float64) {
	return 10 * math.Sin(x*0.03+phi) * math.Cos(y*0.03),
		10 * math.Cos(x*0.03) * math.Sin(y*0.03+phi)
}

func turbulence(_ *Engine, x, y, phi float64) (float64, float64) {
	dx := 5*math.Sin(0.03*x+phi) +
		7*math.Cos(0.02*y-1.3*phi) +
		4*math.Sin(0.01*(x+y)+0.7*phi)
	dy := 6*math.Cos(0.025*x-0.8*phi) +
		5*math.Sin(0.015*y+1.1*phi) +
		3*math.Cos(0.01*(x-y)-0.5*phi)
	return dx, dy
}

func pulsar(e *Engine, x, y, phi float64) (float64, float64) {
	rx, ry := x-e.center.X, y-e.center.Y
	dist := math.Sqrt(rx*rx + ry*ry)
	angle := math.Atan2(ry, rx)
	pulse := math.Sin(0.05*dist - 2*phi)
	return 15 * pulse * math.Cos(angle), 15 * pulse * math.Sin(angle)
}

func fractal(_ *Engine, x, y, phi float64) (float64, float64) {
	return 8 * math.Sin(0.02*x+math.Sin(0.05*y+phi)),
		8 * math.Cos(0.02*y+math.Cos(0.05*x+phi))
}

// noise samples the engine's Perlin field. The y channel reads a shifted
// region of the same field so the two offsets are uncorrelated.
func noise(e *Engine, x, y, phi float64) (float64, float64) {
	const (
		scale = 0.01
		amp   = 30
		shift = 57.3
	)
	sx, sy := x*scale, y*scale
	return amp * e.noise.Noise2D(sx+phi, sy),
		amp * e.noise.Noise2D(sx+shift, sy+shift+phi)
}

func crystal(_ *Engine, x, y, phi float64) (float64, float64) {
	return 15 * math.Sin(x*0.05+phi) * math.Cos(y*0.05),
		15 * math.Cos(x*0.05) * math.Sin(y*0.05+phi)
}

func vortex(e *Engine, x, y, phi float64) (float64, float64) {
	rx, ry := x-e.center.X, y-e.center.Y
	r := math.Sqrt(rx*rx + ry*ry)
	theta := math.Atan2(ry, rx)
	return r * 0.01 * math.Cos(theta+phi), r * 0.01 * math.Sin(theta+phi)
}

// cell pulls points toward the top-left corner of their grid cell.
func cell(_ *Engine, x, y, phi float64) (float64, float64) {
	const grid = 50
	gx := math.Floor(x/grid) * grid
	gy := math.Floor(y/grid) * grid
	return (gx - x) * 0.1 * math.Sin(phi), (gy - y) * 0.1 * math.Cos(phi)
}

// offset looks up the formula for p. Unknown patterns are the identity.
func offset(p Pattern) offsetFunc {
	if !p.Valid() {
		return identity
	}
	return offsets[p]
}
