package analysis

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/inkstep/align"
	"github.com/katalvlaran/inkstep/cluster"
	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/geom"
	"github.com/katalvlaran/inkstep/matrix"
	"github.com/katalvlaran/inkstep/segment"
)

// ErrUnknownFeature indicates a Feature value outside the defined set.
var ErrUnknownFeature = errors.New("analysis: unknown feature")

// ErrTooFewSheets indicates that a comparison needs at least two sheets.
var ErrTooFewSheets = errors.New("analysis: at least two sheets required")

// Feature selects the pairwise distance used for clustering.
type Feature int

const (
	// ProcessSimilarity is the step-level alignment distance with joins.
	ProcessSimilarity Feature = iota
	// AnswerTime is the absolute difference of answer times in milliseconds.
	AnswerTime
)

// String returns the feature name.
func (f Feature) String() string {
	switch f {
	case ProcessSimilarity:
		return "process"
	case AnswerTime:
		return "answer-time"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

// ParseFeature maps "process" or "answer-time" to a Feature.
func ParseFeature(s string) (Feature, error) {
	switch s {
	case "process":
		return ProcessSimilarity, nil
	case "answer-time", "time":
		return AnswerTime, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFeature)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSegmentOptions sets the segmenter tuning.
func WithSegmentOptions(o segment.Options) Option {
	return func(a *Analyzer) { a.seg = o }
}

// WithAlignConfig sets the three-level aligner tuning.
func WithAlignConfig(c align.Config) Option {
	return func(a *Analyzer) { a.align = c }
}

// WithClusterOptions sets the dendrogram cut tuning.
func WithClusterOptions(o cluster.Options) Option {
	return func(a *Analyzer) { a.clus = o }
}

// WithLogger sets the logger for phase timings. A nil logger discards.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		a.log = l
	}
}

// Clustering is the outcome of one clustering run.
type Clustering struct {
	Feature      Feature
	Raw          *matrix.Dense
	Standardized *matrix.Dense
	Stats        matrix.Stats
	Tree         *cluster.Dendrogram
}

// OptimalGroups cuts the tree at its optimal depth for weight w.
func (c *Clustering) OptimalGroups(w float64) ([]cluster.Group, int, error) {
	depth := c.Tree.OptimalDepth(w)
	gs, err := c.Tree.GroupsAtDepth(depth)

	return gs, depth, err
}

// GroupResult holds both feature clusterings of one named sheet set.
type GroupResult struct {
	Name       string
	Process    *Clustering
	AnswerTime *Clustering
}

// Ranked is one candidate of a model-answer ranking.
type Ranked struct {
	Sheet  *core.Sheet
	Result align.Result
}

// StrokeComparison is one sampled point-level alignment between two
// normalized strokes.
type StrokeComparison struct {
	Left, Right                     *core.Stroke
	LeftSimplified, RightSimplified []geom.Point
	Result                          align.Result
}

// StepComparison is one sampled stroke-level alignment between two steps
// of different sheets.
type StepComparison struct {
	LeftSheet, RightSheet int
	Left, Right           *core.Step
	Result                align.Result
}
