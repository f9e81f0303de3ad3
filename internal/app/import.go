package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketlift/internal/basket"
	"github.com/blackwell-systems/basketlift/internal/store"
)

var (
	importQuiet bool

	importCmd = &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a transactions CSV into the basketlift database",
		Long: `Validate a transactions CSV and load it into the basketlift database,
replacing any previously imported dataset.

The CSV must have exactly two columns (basket id, item id) and a header
row, with one row per purchased item. Rows with a different shape abort
the import; nothing is written unless the whole file is valid.

Importing is optional: eval and watch accept --csv to read a file
directly. Import once when you evaluate many rules against the same
dataset.`,
		Example: `  # Import a dataset
  basketlift import transactions.csv

  # Import quietly (suppress the summary)
  basketlift import transactions.csv --quiet`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
)

func init() {
	importCmd.Flags().BoolVar(&importQuiet, "quiet", false, "suppress output")

	// Register with root command
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	// Validate and load the CSV before touching the database
	coll, err := basket.LoadCSV(csvPath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if coll.Len() == 0 {
		return fmt.Errorf("import failed: %s contains no baskets", csvPath)
	}

	// Get database path
	path, err := getDBPath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	// Open database
	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Create schema if needed
	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	if err := db.ReplaceCollection(coll, csvPath); err != nil {
		return fmt.Errorf("failed to store dataset: %w", err)
	}

	if !importQuiet {
		items, err := db.CountItems()
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d baskets (%d distinct items) from %s\n", coll.Len(), items, csvPath)
	}

	return nil
}
