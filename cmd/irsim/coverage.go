package main

import (
	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/core"
	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/pkg/config"
	"github.com/spf13/cobra"
)

func coverageReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	counters := core.NewCoverageCounters()
	// Demo basic-block hits, standing in for the compiled contract's
	// own ir_builtin_add_coverage_counter calls.
	for _, bb := range []int32{0, 1, 1, 2, 5, 5, 5} {
		counters.AddCoverageCounter(bb)
	}

	h := newStdioHost(cmd.OutOrStdout())
	counters.CallCoverageLog(h, cfg.Coverage.Topic)
	return nil
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Exercise the coverage counter vector and its JSON log dump",
}

func init() {
	coverageCmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Record demo basic-block hits and emit the coverage log",
		RunE:  coverageReport,
	})
}

// CoverageCmd is registered onto the root command in main.go.
var CoverageCmd = coverageCmd
