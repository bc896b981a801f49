package geom

import "math"

// DefaultMaxGap is the largest distance, in canvas units, allowed between
// two consecutive stroke points.
const DefaultMaxGap = 2.0

// Interpolate returns the points needed to draw a continuous segment from
// p0 to p1 without gaps wider than maxGap. p0 itself is not included; p1 is
// always the last element and is returned exactly as given.
func Interpolate(p0, p1 Point, maxGap float64) []Point {
	if maxGap <= 0 {
		maxGap = DefaultMaxGap
	}
	d := p0.Dist(p1)
	if d <= maxGap {
		return []Point{p1}
	}

	steps := int(math.Floor(d/maxGap)) + 1
	points := make([]Point, 0, steps)
	for i := 1; i < steps; i++ {
		points = append(points, p0.Lerp(p1, float64(i)/float64(steps)))
	}
	return append(points, p1)
}

// AppendDistinct appends points to dst, dropping any point equal to the
// element right before it.
func AppendDistinct(dst []Point, points ...Point) []Point {
	for _, p := range points {
		if n := len(dst); n > 0 && dst[n-1] == p {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}
