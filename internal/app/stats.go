package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketlift/internal/output"
	"github.com/blackwell-systems/basketlift/internal/store"
)

var (
	statsTop int

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the imported dataset",
		Long: `Display a summary of the imported dataset: where it came from, how many
baskets and distinct items it holds, and the items present in the most
baskets together with their single-item support.

Single-item support is the fraction of baskets containing the item; it
is the baseline against which a rule's lift is measured.`,
		Example: `  # Dataset summary with the 10 most common items
  basketlift stats

  # Show more items
  basketlift stats --top 25`,
		RunE: runStats,
	}
)

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "number of top items to show")

	// Register with root command
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	// Validate flags
	if statsTop <= 0 {
		return fmt.Errorf("invalid top: %d (must be positive)", statsTop)
	}

	// Get database path
	path, err := getDBPath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	// Open store
	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	baskets, err := db.CountBaskets()
	if err != nil {
		return err
	}
	if baskets == 0 {
		fmt.Println("No dataset imported. Run 'basketlift import <file.csv>' first.")
		return nil
	}

	items, err := db.CountItems()
	if err != nil {
		return err
	}
	info, err := db.GetDatasetInfo()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderDatasetSummary(info, baskets, items))
	fmt.Println()

	top, err := db.TopItems(statsTop)
	if err != nil {
		return err
	}
	fmt.Print(output.RenderItemTable(top))

	return nil
}
