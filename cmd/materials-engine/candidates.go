// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/candidates"
	"github.com/pdiddy/materials-engine/pkg/types"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Manage the computational candidate set (import, export, summary)",
	Long: `Candidates manages the normalized computational candidate set. Use
subcommands to import a CSV snapshot, export the archived set, list the
stable subset, or print summary statistics.`,
}

// --- import subcommand ---

var candidatesImportCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Validate a candidate CSV and replace the archived snapshot",
	Long: `Import reads candidate rows from a CSV file, validates and normalizes
them, and replaces the archived candidate snapshot with the accepted
rows. Invalid rows are reported and skipped; they never abort the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runCandidatesImport,
}

func runCandidatesImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening candidate file: %w", err)
	}
	defer f.Close()

	rows, err := candidates.ReadCSV(f)
	if err != nil {
		return err
	}

	store := candidates.NewStore()
	summary := store.Load(rows, os.Stdout)
	if summary.Loaded == 0 && summary.Total() > 0 {
		return fmt.Errorf("all %d rows rejected", summary.Total())
	}

	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.SaveCandidates(context.Background(), store.All()); err != nil {
		return err
	}
	fmt.Printf("archived %d candidates\n", summary.Loaded)
	return nil
}

// --- export subcommand ---

var candidatesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the archived candidate set as CSV to stdout",
	RunE:  runCandidatesExport,
}

func runCandidatesExport(cmd *cobra.Command, args []string) error {
	store, err := archivedCandidates(cmd)
	if err != nil {
		return err
	}
	return store.WriteCSV(os.Stdout)
}

// --- stable subcommand ---

var candidatesStableCmd = &cobra.Command{
	Use:   "stable",
	Short: "List candidates at or below the stability threshold",
	RunE:  runCandidatesStable,
}

func runCandidatesStable(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold <= 0 {
		threshold = types.DefaultStabilityThreshold
	}

	store, err := archivedCandidates(cmd)
	if err != nil {
		return err
	}

	stable := store.FilterStable(threshold)
	fmt.Printf("%-16s  %-10s  %-18s  %s\n", "Composition", "Class", "E above hull", "Crystal system")
	for _, c := range stable {
		fmt.Printf("%-16s  %-10s  %-18.4f  %s\n",
			c.Composition, c.Class, c.EnergyAboveHull, c.CrystalSystem)
	}
	fmt.Printf("\n%d of %d candidates stable at %.3g eV/atom\n", len(stable), store.Len(), threshold)
	return nil
}

// --- summary subcommand ---

var candidatesSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print descriptive statistics over the candidate set",
	RunE:  runCandidatesSummary,
}

func runCandidatesSummary(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold <= 0 {
		threshold = types.DefaultStabilityThreshold
	}

	store, err := archivedCandidates(cmd)
	if err != nil {
		return err
	}

	s := store.Summarize(threshold)
	fmt.Printf("Candidates:        %d\n", s.Total)
	fmt.Printf("Stable (<=%.3g):   %d\n", threshold, s.Stable)
	for _, class := range types.CompositionClasses {
		if n := s.ByClass[class]; n > 0 {
			fmt.Printf("  %-9s        %d\n", class, n)
		}
	}
	if s.Total > 0 {
		fmt.Printf("Formation energy:  %.3f eV/atom mean\n", s.MeanFormationEnergy)
		fmt.Printf("Band gap:          %.3f eV mean\n", s.MeanBandGap)
		fmt.Printf("Density:           %.3f g/cm3 mean\n", s.MeanDensity)
		fmt.Printf("E above hull:      min %.4f  max %.4f  mean %.4f\n", s.HullMin, s.HullMax, s.HullMean)
	}
	return nil
}

// archivedCandidates loads the archived snapshot into an in-memory store.
func archivedCandidates(cmd *cobra.Command) (*candidates.Store, error) {
	a, err := openArchive(cmd)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	cands, err := a.LoadCandidates(context.Background())
	if err != nil {
		return nil, err
	}

	store := candidates.NewStore()
	store.Replace(cands)
	return store, nil
}

func init() {
	candidatesStableCmd.Flags().Float64("threshold", 0, "max energy above hull in eV/atom (default 0.1)")
	candidatesSummaryCmd.Flags().Float64("threshold", 0, "max energy above hull in eV/atom (default 0.1)")

	candidatesCmd.AddCommand(candidatesImportCmd)
	candidatesCmd.AddCommand(candidatesExportCmd)
	candidatesCmd.AddCommand(candidatesStableCmd)
	candidatesCmd.AddCommand(candidatesSummaryCmd)

	rootCmd.AddCommand(candidatesCmd)
}
