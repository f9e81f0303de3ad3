package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for basketlift
	RootCmd = &cobra.Command{
		Use:   "basketlift",
		Short: "Market-basket association-rule metrics from transaction data",
		Long: `basketlift evaluates association rules against transactional basket data
and reports support, confidence, and lift.

A rule has the form "A,B -> C": if a basket contains every item on the
left, how often does it also contain every item on the right. Rules are
evaluated in one pass over the data; nothing is mined or discovered
automatically.

Quick Start:
  1. basketlift import transactions.csv
  2. basketlift eval "bread -> butter"
  3. basketlift stats

The transactions CSV has two columns (basket id, item id), one header
row, and one row per purchased item.

Examples:
  # Import a dataset
  basketlift import transactions.csv

  # Evaluate a rule against the imported dataset
  basketlift eval "bread,milk -> butter"

  # Evaluate a rule straight from a CSV, skipping the import
  basketlift eval --csv transactions.csv "bread -> butter"

  # Dataset overview and most common items
  basketlift stats --top 20

  # Re-evaluate a rule whenever the CSV changes
  basketlift watch --csv transactions.csv --rule "bread -> butter"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := getDBPath()
			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				fmt.Println("basketlift: association-rule metrics for market-basket data")
				fmt.Println()
				fmt.Println("Run 'basketlift import <file.csv>' to get started.")
				fmt.Println("Run 'basketlift --help' for the full reference.")
			} else {
				fmt.Println("basketlift: association-rule metrics for market-basket data")
				fmt.Println()
				fmt.Println("Tip: Run 'basketlift stats' to inspect the imported dataset.")
				fmt.Println("     Run 'basketlift eval \"A -> B\"' to evaluate a rule.")
				fmt.Println("     Run 'basketlift --help' for all commands.")
			}
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.basketlift/basketlift.db)")

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
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .basketlift directory if it doesn't exist
	dir := filepath.Join(home, ".basketlift")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create basketlift directory: %w", err)
	}

	return filepath.Join(dir, "basketlift.db"), nil
}
