package analysis

import (
	"fmt"
	"io"
	"log"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/inkstep/align"
	"github.com/katalvlaran/inkstep/cluster"
	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/matrix"
	"github.com/katalvlaran/inkstep/segment"
)

// Analyzer runs the analysis pipeline with a fixed tuning. It holds no
// per-run state and may be shared.
type Analyzer struct {
	seg   segment.Options
	align align.Config
	clus  cluster.Options
	log   *log.Logger
}

// New returns an Analyzer with default tuning overridden by opts.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		seg:   segment.DefaultOptions(),
		align: align.DefaultConfig(),
		clus:  cluster.DefaultOptions(),
		log:   log.New(io.Discard, "", 0),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(a)
		}
	}
	if err := a.seg.Validate(); err != nil {
		return nil, err
	}
	if err := a.align.Validate(); err != nil {
		return nil, err
	}
	if err := a.clus.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// ClusterOptions returns the configured cut tuning.
func (a *Analyzer) ClusterOptions() cluster.Options { return a.clus }

// Steps validates the sheet and segments its strokes.
func (a *Analyzer) Steps(s *core.Sheet) ([]*core.Step, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	steps, err := segment.Segment(s.Strokes, a.seg)
	if err != nil {
		return nil, fmt.Errorf("sheet %d: %w", s.ID, err)
	}

	return steps, nil
}

// ProcessDistance aligns the steps of two sheets.
func (a *Analyzer) ProcessDistance(s1, s2 *core.Sheet) (align.Result, error) {
	st1, err := a.Steps(s1)
	if err != nil {
		return align.Result{}, err
	}
	st2, err := a.Steps(s2)
	if err != nil {
		return align.Result{}, err
	}

	return a.align.Process(st1, st2)
}

// Cluster computes the pairwise distance matrix of sheets for feature f,
// standardizes it and builds the dendrogram. Sheet IDs must be 0..N-1.
func (a *Analyzer) Cluster(sheets []*core.Sheet, f Feature) (*Clustering, error) {
	if len(sheets) == 0 {
		return nil, cluster.ErrNoSheets
	}
	byID, err := indexByID(sheets)
	if err != nil {
		return nil, err
	}

	var pair matrix.PairFunc
	switch f {
	case ProcessSimilarity:
		steps, err := a.segmentAll(byID)
		if err != nil {
			return nil, err
		}
		pair = func(i, k int) (float64, error) {
			r, err := a.align.Process(steps[i], steps[k])
			return r.Distance, err
		}
	case AnswerTime:
		times := make([]float64, len(byID))
		for i, s := range byID {
			at, err := s.AnswerTime()
			if err != nil {
				return nil, err
			}
			times[i] = float64(at)
		}
		pair = func(i, k int) (float64, error) {
			return math.Abs(times[i] - times[k]), nil
		}
	default:
		return nil, fmt.Errorf("Cluster: %w", ErrUnknownFeature)
	}

	start := time.Now()
	raw, err := matrix.NewPairwise(len(byID), pair)
	if err != nil {
		return nil, fmt.Errorf("Cluster(%s): %w", f, err)
	}
	std, st, err := matrix.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("Cluster(%s): %w", f, err)
	}
	a.log.Printf("%s: distance matrix %dx%d in %s (mean=%.4g std=%.4g)", f, len(byID), len(byID), time.Since(start), st.Mean, st.Std)
	if st.Degenerate {
		a.log.Printf("%s: all distances equal, standardized matrix is zero", f)
	}

	start = time.Now()
	tree, err := cluster.Build(sheets, std)
	if err != nil {
		return nil, err
	}
	a.log.Printf("%s: clustered %d sheets in %s (height %d)", f, len(sheets), time.Since(start), tree.Height())

	return &Clustering{Feature: f, Raw: raw, Standardized: std, Stats: st, Tree: tree}, nil
}

// Group clusters the same sheets by both features.
func (a *Analyzer) Group(sheets []*core.Sheet, name string) (*GroupResult, error) {
	proc, err := a.Cluster(sheets, ProcessSimilarity)
	if err != nil {
		return nil, fmt.Errorf("Group %q: %w", name, err)
	}
	at, err := a.Cluster(sheets, AnswerTime)
	if err != nil {
		return nil, fmt.Errorf("Group %q: %w", name, err)
	}

	return &GroupResult{Name: name, Process: proc, AnswerTime: at}, nil
}

// RankByModel aligns every candidate against the model answer and returns
// them ordered by ascending process distance. Equal distances keep the
// candidate order.
func (a *Analyzer) RankByModel(model *core.Sheet, candidates []*core.Sheet) ([]Ranked, error) {
	start := time.Now()
	ms, err := a.Steps(model)
	if err != nil {
		return nil, fmt.Errorf("RankByModel: model: %w", err)
	}

	out := make([]Ranked, len(candidates))
	for i, c := range candidates {
		cs, err := a.Steps(c)
		if err != nil {
			return nil, fmt.Errorf("RankByModel: %w", err)
		}
		r, err := a.align.Process(ms, cs)
		if err != nil {
			return nil, fmt.Errorf("RankByModel: sheet %d: %w", c.ID, err)
		}
		out[i] = Ranked{Sheet: c, Result: r}
	}
	slices.SortStableFunc(out, func(x, y Ranked) int {
		switch {
		case x.Result.Distance < y.Result.Distance:
			return -1
		case x.Result.Distance > y.Result.Distance:
			return 1
		}

		return 0
	})
	a.log.Printf("ranked %d candidates in %s", len(candidates), time.Since(start))

	return out, nil
}

// segmentAll segments every sheet once, timing the phase.
func (a *Analyzer) segmentAll(sheets []*core.Sheet) ([][]*core.Step, error) {
	start := time.Now()
	out := make([][]*core.Step, len(sheets))
	total := 0
	for i, s := range sheets {
		steps, err := a.Steps(s)
		if err != nil {
			return nil, err
		}
		out[i] = steps
		total += len(steps)
	}
	a.log.Printf("segmented %d sheets into %d steps in %s", len(sheets), total, time.Since(start))

	return out, nil
}

// indexByID orders sheets by ID, which must be a permutation of 0..N-1.
func indexByID(sheets []*core.Sheet) ([]*core.Sheet, error) {
	byID := make([]*core.Sheet, len(sheets))
	for i, s := range sheets {
		if s == nil || s.ID < 0 || s.ID >= len(sheets) || byID[s.ID] != nil {
			return nil, fmt.Errorf("sheet %d: %w", i, cluster.ErrSheetID)
		}
		byID[s.ID] = s
	}

	return byID, nil
}
