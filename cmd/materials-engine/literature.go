// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/literature"
)

var literatureCmd = &cobra.Command{
	Use:   "literature",
	Short: "Manage the experimental literature database (seed, import, export, summary)",
	Long: `Literature manages the append-mostly log of experimental coating
performance entries extracted from published papers. Entries are keyed
by source DOI; re-adding a DOI fails unless flagged as a correction.`,
}

// --- seed subcommand ---

var literatureSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the curated key reference papers into the archive",
	RunE:  runLiteratureSeed,
}

func runLiteratureSeed(cmd *cobra.Command, args []string) error {
	store := literature.NewStore(os.Stderr)
	if err := store.SeedKeyPapers(); err != nil {
		return err
	}

	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	added := 0
	for _, e := range store.All() {
		if err := a.AppendEntry(ctx, e, false); err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", e.SourceID, err)
			continue
		}
		added++
	}
	fmt.Printf("seeded %d of %d key papers\n", added, store.Len())
	return nil
}

// --- import subcommand ---

var literatureImportCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Bulk-import literature entries from a CSV file",
	Long: `Import reads literature rows from a CSV file through the same
validation as single-entry additions. Rows that fail validation or
collide with an archived DOI are reported and skipped; with --correction
a collision replaces the archived entry instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runLiteratureImport,
}

func runLiteratureImport(cmd *cobra.Command, args []string) error {
	correction, _ := cmd.Flags().GetBool("correction")

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening literature file: %w", err)
	}
	defer f.Close()

	rows, err := literature.ReadCSV(f)
	if err != nil {
		return err
	}

	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	store, err := loadLiterature(ctx, a)
	if err != nil {
		return err
	}

	summary := store.LoadRowsWith(rows, correction, os.Stdout)
	if summary.Loaded == 0 && summary.Total() > 0 {
		return fmt.Errorf("all %d rows rejected", summary.Total())
	}

	if err := a.SaveEntries(ctx, store.All()); err != nil {
		return err
	}
	fmt.Printf("archive holds %d entries\n", store.Len())
	return nil
}

// --- export subcommand ---

var literatureExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the archived literature log as CSV to stdout",
	RunE:  runLiteratureExport,
}

func runLiteratureExport(cmd *cobra.Command, args []string) error {
	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := loadLiterature(context.Background(), a)
	if err != nil {
		return err
	}
	return store.WriteCSV(os.Stdout)
}

// --- summary subcommand ---

var literatureSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print descriptive statistics over the literature log",
	RunE:  runLiteratureSummary,
}

func runLiteratureSummary(cmd *cobra.Command, args []string) error {
	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := loadLiterature(context.Background(), a)
	if err != nil {
		return err
	}

	s := store.Summarize()
	fmt.Printf("Entries:            %d\n", s.TotalEntries)
	if s.TotalEntries == 0 {
		return nil
	}
	fmt.Printf("Years:              %d-%d\n", s.YearMin, s.YearMax)
	fmt.Printf("Materials tested:   %d\n", s.MaterialsTested)
	fmt.Printf("Longest test:       %.0f h\n", s.MaxTestDurationHours)
	if s.BestCorrosionCurrent != nil {
		fmt.Printf("Best corrosion:     %.3g uA/cm2\n", *s.BestCorrosionCurrent)
	}
	if s.BestContactResistance != nil {
		fmt.Printf("Best resistance:    %.3g mOhm cm2\n", *s.BestContactResistance)
	}
	if s.MeanCostEstimate != nil {
		fmt.Printf("Mean cost:          $%.2f/m2\n", *s.MeanCostEstimate)
	}
	return nil
}

func init() {
	literatureImportCmd.Flags().Bool("correction", false, "replace archived entries with matching DOIs")

	literatureCmd.AddCommand(literatureSeedCmd)
	literatureCmd.AddCommand(literatureImportCmd)
	literatureCmd.AddCommand(literatureExportCmd)
	literatureCmd.AddCommand(literatureSummaryCmd)

	rootCmd.AddCommand(literatureCmd)
}
