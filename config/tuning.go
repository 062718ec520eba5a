// Package config loads analysis tuning from a JSON file.
//
// Every field is optional; an omitted field keeps the package default, so
// a partial file such as {"step_gap": 60} is valid.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/inkstep/align"
	"github.com/katalvlaran/inkstep/analysis"
	"github.com/katalvlaran/inkstep/cluster"
	"github.com/katalvlaran/inkstep/segment"
)

// MaxFileSize bounds the size of a tuning file.
const MaxFileSize = 1 << 20

var (
	// ErrExtension indicates a tuning path without the .json extension.
	ErrExtension = errors.New("config: tuning file must have .json extension")

	// ErrTooLarge indicates a tuning file over MaxFileSize.
	ErrTooLarge = errors.New("config: tuning file too large")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid tuning")
)

// Tuning mirrors the tunable constants of the pipeline. Nil means default.
type Tuning struct {
	// Segmentation
	YWeight   *float64 `json:"y_weight,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
	OverlapY  *float64 `json:"overlap_y,omitempty"`

	// Alignment
	PointGap          *float64 `json:"point_gap,omitempty"`
	StrokeGap         *float64 `json:"stroke_gap,omitempty"`
	StepGap           *float64 `json:"step_gap,omitempty"`
	JoinWeight        *float64 `json:"join_weight,omitempty"`
	ScoreScale        *float64 `json:"score_scale,omitempty"`
	Anchored          *bool    `json:"anchored,omitempty"`
	SimplifyThreshold *float64 `json:"simplify_threshold,omitempty"`
	NormHeight        *float64 `json:"norm_height,omitempty"`

	// Clustering
	ClusterThreshold *float64 `json:"cluster_threshold,omitempty"`
	DepthWeight      *float64 `json:"depth_weight,omitempty"`
}

// Load reads and validates a tuning file.
func Load(path string) (*Tuning, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".json" {
		return nil, fmt.Errorf("%q: %w", ext, ErrExtension)
	}
	fi, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if fi.Size() > MaxFileSize {
		return nil, fmt.Errorf("%d bytes (max %d): %w", fi.Size(), MaxFileSize, ErrTooLarge)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	t := &Tuning{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("Load: parse %s: %w", clean, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the resolved options of every stage.
func (t *Tuning) Validate() error {
	if err := t.Segment().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := t.Align().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := t.Cluster().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Segment returns the segmenter options.
func (t *Tuning) Segment() segment.Options {
	o := segment.DefaultOptions()
	set(&o.YWeight, t.YWeight)
	set(&o.Threshold, t.Threshold)
	set(&o.OverlapY, t.OverlapY)

	return o
}

// Align returns the aligner configuration. Anchored switches the point
// and stroke levels only; join weight and score scale apply to the step
// level, and join weight also to the lower levels.
func (t *Tuning) Align() align.Config {
	c := align.DefaultConfig()
	if t.Anchored != nil && *t.Anchored {
		c = align.AnchoredConfig()
	}
	set(&c.Point.GapCost, t.PointGap)
	set(&c.Stroke.GapCost, t.StrokeGap)
	set(&c.Step.GapCost, t.StepGap)
	for _, o := range []*align.Options{&c.Point, &c.Stroke, &c.Step} {
		set(&o.JoinWeight, t.JoinWeight)
	}
	set(&c.Step.ScoreScale, t.ScoreScale)
	set(&c.SimplifyThreshold, t.SimplifyThreshold)
	set(&c.NormHeight, t.NormHeight)

	return c
}

// Cluster returns the cut options.
func (t *Tuning) Cluster() cluster.Options {
	o := cluster.DefaultOptions()
	set(&o.Threshold, t.ClusterThreshold)
	set(&o.DepthWeight, t.DepthWeight)

	return o
}

// Options converts the tuning into analyzer options.
func (t *Tuning) Options() []analysis.Option {
	return []analysis.Option{
		analysis.WithSegmentOptions(t.Segment()),
		analysis.WithAlignConfig(t.Align()),
		analysis.WithClusterOptions(t.Cluster()),
	}
}

func set(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}
