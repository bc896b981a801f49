package state

import (
	"image/color"
	"sync"

	"go.uber.org/zap"

	"DrawSolutions/internal/geom"
	"DrawSolutions/internal/logging"
)

// StrokeStore holds the finalized strokes of a session plus at most one
// stroke in progress. Finalized strokes are append-only until Clear.
type StrokeStore struct {
	mu      sync.RWMutex
	strokes []Stroke
	current *Stroke
	log     *zap.SugaredLogger

	// OnClear runs after Clear has emptied the store, outside the lock.
	OnClear func()
}

func NewStrokeStore(log *zap.SugaredLogger) *StrokeStore {
	return &StrokeStore{log: logging.OrNop(log)}
}

// BeginStroke discards any unfinished stroke and starts a new one at p.
func (s *StrokeStore) BeginStroke(p geom.Point, c color.NRGBA, width int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.log.Debugw("discarding unfinished stroke", "id", s.current.ID, "points", len(s.current.Points))
	}
	s.current = newStroke(p, c, width)
	return s.current.ID
}

// ExtendCurrent appends points to the stroke in progress, skipping any
// point equal to the one before it. It returns the number of points
// appended; with no stroke in progress it does nothing.
func (s *StrokeStore) ExtendCurrent(points ...geom.Point) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	n := len(s.current.Points)
	s.current.Points = geom.AppendDistinct(s.current.Points, points...)
	return len(s.current.Points) - n
}

// FinalizeCurrent commits the stroke in progress if it has at least two
// points. The stroke in progress is cleared either way.
func (s *StrokeStore) FinalizeCurrent() (Stroke, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.current
	s.current = nil
	if cur == nil {
		return Stroke{}, false
	}
	if !cur.Drawable() {
		s.log.Debugw("dropping single-point stroke", "id", cur.ID)
		return Stroke{}, false
	}
	s.strokes = append(s.strokes, *cur)
	s.log.Infow("stroke finalized", "id", cur.ID, "points", len(cur.Points), "total", len(s.strokes))
	return *cur, true
}

// LastPoint returns the final point of the stroke in progress.
func (s *StrokeStore) LastPoint() (geom.Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return geom.Point{}, false
	}
	return s.current.Points[len(s.current.Points)-1], true
}

// Clear removes every stroke, finished or not, then calls OnClear.
func (s *StrokeStore) Clear() {
	s.mu.Lock()
	n := len(s.strokes)
	s.strokes = nil
	s.current = nil
	s.mu.Unlock()

	s.log.Infow("store cleared", "removed", n)
	if s.OnClear != nil {
		s.OnClear()
	}
}

// Strokes returns the finalized strokes in drawing order.
func (s *StrokeStore) Strokes() []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

// Current returns a copy of the stroke in progress.
func (s *StrokeStore) Current() (Stroke, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Stroke{}, false
	}
	return s.current.Clone(), true
}

// Len returns the number of finalized strokes.
func (s *StrokeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.strokes)
}
