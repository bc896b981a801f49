package state

import (
	"image/color"
	"time"

	"github.com/google/uuid"

	"DrawSolutions/internal/geom"
)

const (
	MinWidth = 1
	MaxWidth = 10
)

// Stroke is one pointer-down to pointer-up drawing action. Color and width
// are fixed when the stroke begins.
type Stroke struct {
	ID     string
	Points []geom.Point
	Color  color.NRGBA
	Width  int
	Time   time.Time
}

func newStroke(p geom.Point, c color.NRGBA, width int) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []geom.Point{p},
		Color:  c,
		Width:  ClampWidth(width),
		Time:   time.Now(),
	}
}

// Drawable reports whether the stroke has at least one segment.
func (s Stroke) Drawable() bool {
	return len(s.Points) >= 2
}

// Clone returns a copy that shares no memory with s.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = append([]geom.Point(nil), s.Points...)
	return c
}

// ClampWidth bounds w to [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	return max(MinWidth, min(MaxWidth, w))
}
