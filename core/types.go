package core

import (
	"errors"

	"github.com/katalvlaran/inkstep/geom"
)

// Sentinel errors for data-model validation.
var (
	// ErrEmptySheet indicates an answer sheet without strokes.
	ErrEmptySheet = errors.New("core: empty answer sheet")

	// ErrEmptyStroke indicates a stroke without points.
	ErrEmptyStroke = errors.New("core: empty stroke")

	// ErrNonChronological indicates that point times decrease.
	ErrNonChronological = errors.New("core: point times are not chronological")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("core: coordinate is NaN or Inf")
)

// MinSpeedPoints is the minimum number of points (exclusive) a stroke needs
// to contribute to writing-speed statistics.
const MinSpeedPoints = 10

// Point is one pen sample: a millisecond timestamp and a position.
// Points produced by normalization keep the source time; points produced
// by simplification carry no time and are plain geom.Point values.
type Point struct {
	Time uint64
	X, Y float64
}

// XY drops the timestamp.
func (p Point) XY() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Stats bundles the timing statistics of an answer sheet.
//
// AnswerTime is last point time minus first point time; WritingTime sums
// per-stroke durations; WritingRatio = WritingTime/AnswerTime (0 when the
// answer time is 0). SpeedMean and SpeedVar are the population mean and
// variance of per-stroke speed (length / duration) over strokes with more
// than MinSpeedPoints points and a positive duration; SpeedSamples counts
// them and both moments are 0 when it is 0.
type Stats struct {
	AnswerTime   uint64
	WritingTime  uint64
	WritingRatio float64
	SpeedMean    float64
	SpeedVar     float64
	SpeedSamples int
}
