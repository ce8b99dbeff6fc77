package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for basketminer
	RootCmd = &cobra.Command{
		Use:   "basketminer",
		Short: "Association rule mining for basket-style CSV data",
		Long: `basketminer discovers frequent itemsets in transaction data and derives
association rules ("customers who buy X tend to buy Y") scored by
confidence and lift.

Input is a comma-separated file where the first row is a header and every
following row lists the items of one transaction.

Quick Start:
  1. basketminer mine --source data/transactions.csv
  2. Tune --min-support and --min-conf until the rule set is useful
  3. basketminer mine --save   # record the run for later comparison
  4. basketminer history       # review saved runs

Features:
  • Frequent-itemset mining with configurable support threshold
  • Confidence- and lift-scored association rules
  • Run history persisted to a local SQLite database
  • Watch mode that re-mines whenever the source file changes

Examples:
  # Mine the bundled demonstration dataset
  basketminer mine

  # Mine with looser thresholds
  basketminer mine --source basket.csv --min-support 0.3 --min-conf 0.5

  # List the distinct items and their supports
  basketminer items --source basket.csv

  # Re-mine on every change to the source file
  basketminer watch --source basket.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("basketminer: association rule mining for basket-style CSV data")
			fmt.Println()
			fmt.Println("Run 'basketminer mine' to analyze the bundled demonstration dataset.")
			fmt.Println("Run 'basketminer --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.basketminer/basketminer.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
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
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".basketminer")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return filepath.Join(dir, "basketminer.db"), nil
}
