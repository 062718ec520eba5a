package core

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Sheet is one subject's answer: a chronological stroke sequence.
//
// ID is a dense integer that indexes the sheet in distance matrices; it must
// be stable for the lifetime of a clustering run.
type Sheet struct {
	ID      int
	Name    string
	Strokes []*Stroke
}

// NewSheet returns a sheet with the given identity and strokes.
func NewSheet(id int, name string, strokes []*Stroke) *Sheet {
	return &Sheet{ID: id, Name: name, Strokes: strokes}
}

// Validate checks that the sheet has strokes, that each stroke is valid and
// that stroke start times do not decrease.
func (s *Sheet) Validate() error {
	if len(s.Strokes) == 0 {
		return fmt.Errorf("sheet %d: %w", s.ID, ErrEmptySheet)
	}
	var prev uint64
	for i, st := range s.Strokes {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("sheet %d stroke %d: %w", s.ID, i, err)
		}
		if st.Points[0].Time < prev {
			return fmt.Errorf("sheet %d stroke %d: %w", s.ID, i, ErrNonChronological)
		}
		prev = st.Points[len(st.Points)-1].Time
	}

	return nil
}

// AnswerTime returns the time between the first and the last point.
//
// Errors:
//   - ErrEmptySheet when there are no strokes (or the first/last stroke is empty).
//   - ErrNonChronological when the last time precedes the first.
func (s *Sheet) AnswerTime() (uint64, error) {
	if len(s.Strokes) == 0 {
		return 0, fmt.Errorf("sheet %d: %w", s.ID, ErrEmptySheet)
	}
	first, last := s.Strokes[0], s.Strokes[len(s.Strokes)-1]
	if first.Len() == 0 || last.Len() == 0 {
		return 0, fmt.Errorf("sheet %d: %w", s.ID, ErrEmptySheet)
	}
	start, end := first.Points[0].Time, last.Points[last.Len()-1].Time
	if end < start {
		return 0, fmt.Errorf("sheet %d: %w", s.ID, ErrNonChronological)
	}

	return end - start, nil
}

// WritingTime returns the sum of per-stroke durations.
func (s *Sheet) WritingTime() (uint64, error) {
	if len(s.Strokes) == 0 {
		return 0, fmt.Errorf("sheet %d: %w", s.ID, ErrEmptySheet)
	}
	var total uint64
	for _, st := range s.Strokes {
		total += st.Duration()
	}

	return total, nil
}

// Stats computes all timing statistics in one pass over the strokes.
func (s *Sheet) Stats() (Stats, error) {
	at, err := s.AnswerTime()
	if err != nil {
		return Stats{}, err
	}
	wt, err := s.WritingTime()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{AnswerTime: at, WritingTime: wt}
	if at > 0 {
		st.WritingRatio = float64(wt) / float64(at)
	}

	speeds := make([]float64, 0, len(s.Strokes))
	for _, k := range s.Strokes {
		if k.Len() <= MinSpeedPoints {
			continue
		}
		if d := k.Duration(); d > 0 {
			speeds = append(speeds, k.Length()/float64(d))
		}
	}
	st.SpeedSamples = len(speeds)
	if len(speeds) > 0 {
		st.SpeedMean, st.SpeedVar = stat.PopMeanVariance(speeds, nil)
	}

	return st, nil
}
