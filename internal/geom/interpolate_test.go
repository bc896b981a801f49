package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateShortSegment(t *testing.T) {
	got := Interpolate(Pt(0, 0), Pt(1, 1), 2)
	require.Equal(t, []Point{Pt(1, 1)}, got)

	got = Interpolate(Pt(0, 0), Pt(2, 0), 2)
	require.Equal(t, []Point{Pt(2, 0)}, got, "distance equal to the gap needs no densification")
}

func TestInterpolateHorizontal(t *testing.T) {
	got := Interpolate(Pt(0, 0), Pt(10, 0), 2)

	// floor(10/2)+1 = 6 steps: 5 interior points, then the endpoint.
	require.Len(t, got, 6)
	assert.Equal(t, Pt(10, 0), got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].X, got[i-1].X)
		assert.Zero(t, got[i].Y)
	}
	assert.InDelta(t, 10.0/6, got[0].X, 1e-12)
}

func TestInterpolateKeepsEndpointExact(t *testing.T) {
	p0 := Pt(0.1, 0.2)
	p1 := Pt(123.456789, -98.7654321)
	got := Interpolate(p0, p1, 2)

	require.NotEmpty(t, got)
	assert.Equal(t, p1, got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Dist(got[i]), 2.0+1e-9)
	}
	assert.LessOrEqual(t, p0.Dist(got[0]), 2.0+1e-9)
}

func TestInterpolateDefaultGap(t *testing.T) {
	assert.Equal(t, Interpolate(Pt(0, 0), Pt(9, 0), DefaultMaxGap), Interpolate(Pt(0, 0), Pt(9, 0), 0))
}

func TestAppendDistinct(t *testing.T) {
	dst := []Point{Pt(1, 1)}
	dst = AppendDistinct(dst, Pt(1, 1), Pt(2, 2), Pt(2, 2), Pt(3, 3))
	assert.Equal(t, []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}, dst)

	assert.Equal(t, []Point{Pt(0, 0)}, AppendDistinct(nil, Pt(0, 0), Pt(0, 0)))
}
