package align

import (
	"errors"
	"math"
)

// Sentinel errors for alignment.
var (
	// ErrNonFinite indicates a NaN or Inf element cost (malformed geometry).
	ErrNonFinite = errors.New("align: non-finite element cost")

	// ErrBadOptions indicates out-of-range alignment options.
	ErrBadOptions = errors.New("align: invalid options")

	// ErrNilCost indicates that no element cost function was supplied.
	ErrNilCost = errors.New("align: cost function is nil")
)

// NoScore marks a match record without a display score (gaps and the
// lower alignment levels).
const NoScore = -1

// Defaults for the three alignment levels.
const (
	DefaultPointGap    = 40.0
	DefaultStrokeGap   = 100.0
	DefaultStepGap     = 40.0
	DefaultJoinWeight  = 1.0
	DefaultScoreScale  = 100.0
	DefaultNormHeight  = 100.0
	DefaultSimplifyEps = 5.0
)

// direction records how a DP cell was reached.
type direction int8

const (
	origin direction = iota
	match
	skipA
	skipB
)

// Options configures one run of the DP aligner.
//
// Fields:
//   - GapCost       — cost of leaving one element unmatched, > 0.
//   - Anchored      — treat the first elements of both sides as an implicit
//     origin match: the table has M×N cells, the first pair is never scored
//     and the distance is normalized by min(M,N).
//   - StrictBorders — at i==1 or k==1 forbid the gap move that would leave
//     one side entirely unconsumed (i==1 && k==1 allows only a match).
//   - JoinWeight    — fraction of n·GapCost refunded for an n-element join.
//   - ScoreScale    — multiplier for the integer display score of matches;
//     0 disables scores (all matches carry NoScore).
type Options struct {
	GapCost       float64
	Anchored      bool
	StrictBorders bool
	JoinWeight    float64
	ScoreScale    float64
}

// DefaultOptions returns plain-mode options with GapCost=40 and no scores.
func DefaultOptions() Options {
	return Options{GapCost: DefaultPointGap, JoinWeight: DefaultJoinWeight}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if !isFinite(o.GapCost) || o.GapCost <= 0 {
		return ErrBadOptions
	}
	if !isFinite(o.JoinWeight) || o.JoinWeight < 0 {
		return ErrBadOptions
	}
	if !isFinite(o.ScoreScale) || o.ScoreScale < 0 {
		return ErrBadOptions
	}

	return nil
}

// Match is one aligned position. Left or Right is -1 for a gap on that side.
// Joins counts the preceding same-side elements merged into the matched
// element (0 for plain matches and gaps).
type Match struct {
	Left  int
	Right int
	Score int
	Joins int
}

// IsGap reports whether the record leaves one side unmatched.
func (m Match) IsGap() bool { return m.Left < 0 || m.Right < 0 }

// Result is the outcome of one alignment. It is never mutated after return.
type Result struct {
	Distance float64
	Matches  []Match
}

// Similarity maps the distance to 1/ln(1+d). Identical inputs (d == 0) and
// join refunds that push the distance below zero yield math.MaxFloat64.
func (r Result) Similarity() float64 {
	if r.Distance <= 0 {
		return math.MaxFloat64
	}

	return 1.0 / math.Log1p(r.Distance)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
