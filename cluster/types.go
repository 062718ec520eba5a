package cluster

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/inkstep/core"
	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for clustering.
var (
	// ErrNoSheets indicates an empty sheet list.
	ErrNoSheets = errors.New("cluster: no answer sheets")

	// ErrSheetID indicates that sheet IDs are not a permutation of 0..N-1.
	ErrSheetID = errors.New("cluster: sheet IDs must be dense matrix indices")

	// ErrMatrixSize indicates that the distance matrix is not N×N.
	ErrMatrixSize = errors.New("cluster: distance matrix does not match sheet count")

	// ErrBadDepth indicates a negative cut depth.
	ErrBadDepth = errors.New("cluster: depth must be >= 0")

	// ErrBadOptions indicates out-of-range cut options.
	ErrBadOptions = errors.New("cluster: invalid options")
)

// Defaults for Options.
const (
	// DefaultThreshold is the InterDistance threshold for GroupsByThreshold.
	DefaultThreshold = 2.0

	// DefaultDepthWeight weighs mean intra distance against cluster count
	// in OptimalDepth.
	DefaultDepthWeight = 0.5
)

// Options configures the cuts.
//
// Fields:
//   - Threshold   — GroupsByThreshold cut level (standardized units).
//   - DepthWeight — w in OptimalDepth, in [0, 1].
type Options struct {
	Threshold   float64
	DepthWeight float64
}

// DefaultOptions returns Threshold=2.0 and DepthWeight=0.5.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, DepthWeight: DefaultDepthWeight}
}

// Validate requires a finite Threshold and a DepthWeight in [0, 1].
func (o Options) Validate() error {
	if math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) {
		return ErrBadOptions
	}
	if !(o.DepthWeight >= 0 && o.DepthWeight <= 1) {
		return ErrBadOptions
	}

	return nil
}

// Node is one dendrogram node.
//
// A leaf has no Children and Sheet set to the sheet's ID. An internal node
// has exactly two Children (arena indices), Sheet = -1, the group-average
// distance at which it was merged (Inter) and the mean pairwise distance
// over all sheets below it (Intra; 0 for leaves). Members lists the sheet
// IDs below the node, left subtree first.
type Node struct {
	ID       int
	Sheet    int
	Children []int
	Inter    float64
	Intra    float64
	Members  []int
}

// IsLeaf reports whether the node holds a single sheet.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// Group is a named set of sheets produced by a cut.
type Group struct {
	ID     int
	Name   string
	Sheets []*core.Sheet
}

// NewGroup returns a group named "Group <id+1>".
func NewGroup(id int, sheets []*core.Sheet) Group {
	return Group{ID: id, Name: fmt.Sprintf("Group %d", id+1), Sheets: sheets}
}

// AverageAnswerTime returns the mean answer time of the group's sheets in
// milliseconds.
func (g Group) AverageAnswerTime() (float64, error) {
	if len(g.Sheets) == 0 {
		return 0, ErrNoSheets
	}
	times := make([]float64, len(g.Sheets))
	for i, s := range g.Sheets {
		at, err := s.AnswerTime()
		if err != nil {
			return 0, fmt.Errorf("AverageAnswerTime: %w", err)
		}
		times[i] = float64(at)
	}

	return floats.Sum(times) / float64(len(times)), nil
}

// IDs returns the sheet IDs of the group in order.
func (g Group) IDs() []int {
	ids := make([]int, len(g.Sheets))
	for i, s := range g.Sheets {
		ids[i] = s.ID
	}

	return ids
}
