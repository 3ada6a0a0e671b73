// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/gaps"
	"github.com/pdiddy/materials-engine/pkg/types"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Report coverage gaps between candidates and experiments",
	Long: `Gaps reports where the experimental record is thin: candidates nothing
has tested, metrics most entries omit, and composition classes
under-represented relative to the target distribution.`,
	RunE: runGaps,
}

func init() {
	gapsCmd.Flags().Float64("sparse-threshold", 0, "missingness fraction above which a metric counts as sparse (default 0.5)")
	gapsCmd.Flags().Float64("long-duration", 0, "hours above which a test counts as long-duration (default 10000)")
	gapsCmd.Flags().String("alias-file", "", "YAML file of extra material name aliases")
	gapsCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(cmd *cobra.Command, args []string) error {
	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	cands, joined, err := loadJoined(context.Background(), cmd, a)
	if err != nil {
		return err
	}

	sparse, _ := cmd.Flags().GetFloat64("sparse-threshold")
	longDuration, _ := cmd.Flags().GetFloat64("long-duration")

	cfg := types.GapConfig{
		ClassTargets:      defaultClassTargets(),
		SparseThreshold:   sparse,
		LongDurationHours: longDuration,
	}

	report, err := gaps.Analyze(cands, joined, cfg)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	gaps.FormatReport(report, os.Stdout)
	return nil
}

// defaultClassTargets is the desired class mix among tested candidates:
// oxides carry most of the conductivity-stability tradeoff space, with
// nitrides and carbides as the established alternatives.
func defaultClassTargets() map[types.CompositionClass]float64 {
	return map[types.CompositionClass]float64{
		types.ClassOxide:   0.5,
		types.ClassNitride: 0.3,
		types.ClassCarbide: 0.2,
	}
}
