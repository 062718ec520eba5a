package main

import (
	"fmt"

	"github.com/katalvlaran/inkstep/align"
	"github.com/katalvlaran/inkstep/analysis"
	"github.com/katalvlaran/inkstep/cluster"
	"github.com/katalvlaran/inkstep/internal/strokeio"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [sheet|dir]...",
		Short: "Print timing statistics per sheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := strokeio.LoadFiles(args...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-4s %-20s %8s %10s %10s %8s %10s %10s\n",
				"id", "name", "strokes", "answer_ms", "writing_ms", "ratio", "speed", "speed_var")
			for _, s := range sheets {
				if err := s.Validate(); err != nil {
					return err
				}
				st, err := s.Stats()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-4d %-20s %8d %10d %10d %8.3f %10.4f %10.4f\n",
					s.ID, s.Name, len(s.Strokes), st.AnswerTime, st.WritingTime,
					st.WritingRatio, st.SpeedMean, st.SpeedVar)
			}

			return nil
		},
	}
}

func segmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment [sheet]",
		Short: "Split a sheet into answer steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAnalyzer()
			if err != nil {
				return err
			}
			s, err := strokeio.LoadFile(args[0], 0)
			if err != nil {
				return err
			}
			steps, err := a.Steps(s)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d strokes, %d steps\n", s.Name, len(s.Strokes), len(steps))
			for _, st := range steps {
				b := st.Bounds()
				fmt.Fprintf(w, "step %d: %d strokes, bounds (%.1f,%.1f)-(%.1f,%.1f), %d ms\n",
					st.GroupID, len(st.Strokes), b.Left, b.Top, b.Right, b.Bottom, st.TimeSpan())
			}

			return nil
		},
	}
}

func compareCmd() *cobra.Command {
	var strokes int

	cmd := &cobra.Command{
		Use:   "compare [sheet] [sheet]",
		Short: "Align the answer processes of two sheets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAnalyzer()
			if err != nil {
				return err
			}
			sheets, err := strokeio.LoadFiles(args...)
			if err != nil {
				return err
			}
			r, err := a.ProcessDistance(sheets[0], sheets[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "distance %.4f similarity %.4f\n", r.Distance, r.Similarity())
			printMatches(cmd, r)

			if strokes == 0 {
				return nil
			}
			cs, err := a.StrokeComparisons(sheets[0], sheets[1], strokes)
			if err != nil {
				return err
			}
			for i, c := range cs {
				fmt.Fprintf(w, "stroke pair %d: %d vs %d points, distance %.4f\n",
					i, len(c.LeftSimplified), len(c.RightSimplified), c.Result.Distance)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&strokes, "strokes", 0, "also print up to N stroke-level comparisons (-1 for all)")
	return cmd
}

func printMatches(cmd *cobra.Command, r align.Result) {
	w := cmd.OutOrStdout()
	for _, m := range r.Matches {
		switch {
		case m.Left < 0:
			fmt.Fprintf(w, "  -   <- %d\n", m.Right)
		case m.Right < 0:
			fmt.Fprintf(w, "  %d -> -\n", m.Left)
		case m.Score == align.NoScore:
			fmt.Fprintf(w, "  %d == %d (joins %d)\n", m.Left, m.Right, m.Joins)
		default:
			fmt.Fprintf(w, "  %d == %d score %d (joins %d)\n", m.Left, m.Right, m.Score, m.Joins)
		}
	}
}

func clusterCmd() *cobra.Command {
	var (
		feature   string
		depth     int
		threshold bool
		pairs     int
	)

	cmd := &cobra.Command{
		Use:   "cluster [sheet|dir]...",
		Short: "Group sheets by answer process or answer time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := analysis.ParseFeature(feature)
			if err != nil {
				return err
			}
			a, err := newAnalyzer()
			if err != nil {
				return err
			}
			sheets, err := strokeio.LoadFiles(args...)
			if err != nil {
				return err
			}
			res, err := a.Cluster(sheets, f)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			var groups []cluster.Group
			switch {
			case threshold:
				groups = res.Tree.GroupsByThreshold(a.ClusterOptions().Threshold)
				fmt.Fprintf(w, "%s: threshold %.2f, %d groups\n", f, a.ClusterOptions().Threshold, len(groups))
			case depth < 0:
				var d int
				groups, d, err = res.OptimalGroups(a.ClusterOptions().DepthWeight)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: optimal depth %d of %d, %d groups\n", f, d, res.Tree.Height(), len(groups))
			default:
				groups, err = res.Tree.GroupsAtDepth(depth)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: depth %d of %d, %d groups\n", f, depth, res.Tree.Height(), len(groups))
			}

			for _, g := range groups {
				avg, err := g.AverageAnswerTime()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: %d sheets, avg answer %.0f ms:", g.Name, len(g.Sheets), avg)
				for _, s := range g.Sheets {
					fmt.Fprintf(w, " %s", s.Name)
				}
				fmt.Fprintln(w)

				if pairs == 0 || len(g.Sheets) < 2 {
					continue
				}
				cs, err := a.StepComparisons(g, pairs)
				if err != nil {
					return err
				}
				for _, c := range cs {
					fmt.Fprintf(w, "  sheet %d step %d ~ sheet %d step %d: %.4f\n",
						c.LeftSheet, c.Left.GroupID, c.RightSheet, c.Right.GroupID, c.Result.Distance)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&feature, "feature", "f", "process", "process or answer-time")
	cmd.Flags().IntVarP(&depth, "depth", "d", -1, "cut depth (-1 for the optimal depth)")
	cmd.Flags().BoolVar(&threshold, "threshold", false, "cut by the inter-distance threshold instead of depth")
	cmd.Flags().IntVar(&pairs, "steps", 0, "print up to N step-level comparisons per group (-1 for all)")
	return cmd
}

func rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [model] [sheet|dir]...",
		Short: "Rank answers by process distance to a model answer",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAnalyzer()
			if err != nil {
				return err
			}
			model, err := strokeio.LoadFile(args[0], 0)
			if err != nil {
				return err
			}
			candidates, err := strokeio.LoadFiles(args[1:]...)
			if err != nil {
				return err
			}
			ranked, err := a.RankByModel(model, candidates)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, r := range ranked {
				fmt.Fprintf(w, "%3d. %-20s distance %.4f similarity %.4f\n",
					i+1, r.Sheet.Name, r.Result.Distance, r.Result.Similarity())
			}

			return nil
		},
	}
}
