package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketmine/internal/output"
	"github.com/blackwell-systems/basketmine/internal/store"
)

var (
	statsTop int

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the imported dataset",
		Long: `Show import metadata and item frequencies for the imported dataset:
source file, import time, transaction count, distinct items, and the most
frequent individual items with their support ratios.

The per-item ratios are a quick way to pick a workable --minsup before a
full mining run.`,
		Example: `  # Summary with the 10 most frequent items
  basketmine stats

  # Show more items
  basketmine stats --top 25`,
		RunE: runStats,
	}
)

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "number of most frequent items to list")
}

func runStats(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}
	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	info, err := db.Info()
	if err != nil {
		return fmt.Errorf("%w; run 'basketmine import -i <dataset>' first", err)
	}

	top, err := db.TopItems(statsTop)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderDatasetStats(info, top))
	return nil
}
