package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/materials-engine/internal/mpapi"
	"github.com/pdiddy/materials-engine/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultQueryDelay = 1 * time.Second
	defaultUserAgent  = "materials-engine/0.1"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Query the Materials Project for stable coating candidates",
	Long: `Collect queries the Materials Project summary API for thermodynamically
stable oxide, nitride, and carbide materials in the coating-relevant
chemical systems, then replaces the archived candidate snapshot with the
results.

The API key comes from --api-key, the MP_API_KEY environment variable,
or the .secrets/mp-api-key file, in that order.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().String("api-key", "", "Materials Project API key")
	collectCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	collectCmd.Flags().Duration("delay", 0, "delay between consecutive queries (default 1s)")
	collectCmd.Flags().Float64("stability-threshold", 0, "max energy above hull in eV/atom (default 0.1)")
	collectCmd.Flags().Bool("no-oxides", false, "skip oxide chemical systems")
	collectCmd.Flags().Bool("no-nitrides", false, "skip nitride chemical systems")
	collectCmd.Flags().Bool("no-carbides", false, "skip carbide chemical systems")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("MP_API_KEY")
	}
	apiKey = secretDefault("mp-api-key", apiKey)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultQueryDelay
	}
	threshold, _ := cmd.Flags().GetFloat64("stability-threshold")
	noOxides, _ := cmd.Flags().GetBool("no-oxides")
	noNitrides, _ := cmd.Flags().GetBool("no-nitrides")
	noCarbides, _ := cmd.Flags().GetBool("no-carbides")

	cfg := types.CollectConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIKey:             apiKey,
		StabilityThreshold: threshold,
		IncludeOxides:      !noOxides,
		IncludeNitrides:    !noNitrides,
		IncludeCarbides:    !noCarbides,
		QueryDelay:         delay,
	}

	ctx := context.Background()
	collector := mpapi.NewCollector(cfg)
	candidates, err := collector.Collect(ctx, os.Stdout)
	if err != nil {
		return err
	}

	a, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.SaveCandidates(ctx, candidates); err != nil {
		return err
	}
	fmt.Printf("archived %d candidates\n", len(candidates))
	return nil
}
