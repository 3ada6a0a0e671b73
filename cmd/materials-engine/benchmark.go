// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/benchmark"
	"github.com/pdiddy/materials-engine/pkg/types"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Evaluate literature entries against the performance targets",
	Long: `Benchmark compares every archived literature entry against the
performance targets for bipolar-plate coatings: contact resistance,
corrosion current, test duration, and cost. Entries missing a metric get
an unknown verdict for that target, never a pass or fail.`,
	RunE: runBenchmark,
}

func init() {
	benchmarkCmd.Flags().Bool("json", false, "output verdicts as JSON")
	benchmarkCmd.Flags().Bool("passing", false, "only list entries meeting every target")

	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := loadLiterature(context.Background(), a)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return fmt.Errorf("no literature entries archived: run literature seed or literature import first")
	}

	targets := benchmark.SortTargets(types.DefaultTargets())
	entries := store.All()

	passing, _ := cmd.Flags().GetBool("passing")
	if passing {
		for _, e := range entries {
			if met, _ := benchmark.MeetsAll(e, targets); met {
				fmt.Printf("%s  %s\n", e.SourceID, e.Material)
			}
		}
		return nil
	}

	rows := benchmark.EvaluateEntries(entries, targets)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	benchmark.FormatTable(rows, os.Stdout)
	return nil
}
