package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	verbose    bool
	noProgress bool

	// RootCmd is the root command for basketmine
	RootCmd = &cobra.Command{
		Use:   "basketmine",
		Short: "Frequent itemset and association rule mining for transaction logs",
		Long: `basketmine discovers frequent itemsets and confident association rules in
transaction datasets using the level-wise Apriori algorithm.

Datasets are delimited text files, one transaction per line. Mining streams
the file in repeated passes, so datasets never need to fit in memory; import
a dataset once to re-mine it from the local database instead.

Quick Start:
  1. basketmine mine -i baskets.csv --minsup 0.02
  2. basketmine rules -i baskets.csv --minsup 0.02 --minconf 0.5
  3. basketmine import -i baskets.csv   # optional: cache in the database
  4. basketmine mine --from-store --minsup 0.02

Examples:
  # Mine frequent itemsets from a CSV export
  basketmine mine -i baskets.csv --minsup 0.02

  # Derive association rules on top of the itemsets
  basketmine rules -i baskets.csv --minsup 0.02 --minconf 0.6

  # Show dataset statistics for the imported dataset
  basketmine stats

  # Re-mine automatically whenever the dataset file changes
  basketmine watch -i baskets.csv --minsup 0.02`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("basketmine: frequent itemset and association rule mining")
			fmt.Println()
			fmt.Println("Run 'basketmine mine -i <dataset>' to mine a CSV export.")
			fmt.Println("Run 'basketmine --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.basketmine/basketmine.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	RootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable progress display")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(mineCmd)
	RootCmd.AddCommand(rulesCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .basketmine directory if it doesn't exist
	basketmineDir := filepath.Join(home, ".basketmine")
	if err := os.MkdirAll(basketmineDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create basketmine directory: %w", err)
	}

	return filepath.Join(basketmineDir, "basketmine.db"), nil
}
