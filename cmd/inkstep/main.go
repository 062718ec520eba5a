package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/inkstep/analysis"
	"github.com/katalvlaran/inkstep/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "inkstep",
		Short:         "Analyze the writing process of handwritten answers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON tuning file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log phase timings to stderr")

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(segmentCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(clusterCmd())
	rootCmd.AddCommand(rankCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "inkstep:", err)
		os.Exit(1)
	}
}

// tuning returns the loaded tuning file, or an empty tuning (all defaults)
// when --config is not set.
func tuning() (*config.Tuning, error) {
	if configPath == "" {
		return &config.Tuning{}, nil
	}

	return config.Load(configPath)
}

func newAnalyzer() (*analysis.Analyzer, error) {
	t, err := tuning()
	if err != nil {
		return nil, err
	}
	var out io.Writer = io.Discard
	if verbose {
		out = os.Stderr
	}
	opts := append(t.Options(), analysis.WithLogger(log.New(out, "inkstep: ", log.LstdFlags)))

	return analysis.New(opts...)
}
