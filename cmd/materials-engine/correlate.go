// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/correlate"
	"github.com/pdiddy/materials-engine/pkg/types"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Correlate computational features with experimental outcomes",
	Long: `Correlate joins the archived literature entries to the candidate
snapshot by composition, then computes the Pearson correlation between
each computational feature and each experimental outcome over the
matched pairs. Pairs with too little data report no coefficient rather
than a fabricated one.`,
	RunE: runCorrelate,
}

func init() {
	correlateCmd.Flags().StringSlice("feature", nil, "computational feature series (default: all)")
	correlateCmd.Flags().StringSlice("target", nil, "experimental outcome series (default: corrosion current, contact resistance)")
	correlateCmd.Flags().String("alias-file", "", "YAML file of extra material name aliases")
	correlateCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(correlateCmd)
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	_, joined, err := loadJoined(context.Background(), cmd, a)
	if err != nil {
		return err
	}

	features, _ := cmd.Flags().GetStringSlice("feature")
	if len(features) == 0 {
		features = types.CandidateFeatures
	}
	targets, _ := cmd.Flags().GetStringSlice("target")
	if len(targets) == 0 {
		targets = []string{types.MetricCorrosionCurrent, types.MetricContactResistance}
	}

	results, err := correlate.Compute(joined, features, targets)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	correlate.FormatTable(results, os.Stdout)
	return nil
}
