package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketlift/internal/analyzer"
	"github.com/blackwell-systems/basketlift/internal/basket"
	"github.com/blackwell-systems/basketlift/internal/output"
	"github.com/blackwell-systems/basketlift/internal/store"
)

var (
	evalCSV string

	evalCmd = &cobra.Command{
		Use:   "eval <rule>",
		Short: "Evaluate an association rule and report support, confidence, lift",
		Long: `Evaluate a single association rule against basket data and print its
support, confidence, and lift.

The rule has the form "A,B -> C". Whitespace around items and around the
arrow is ignored. Items may appear on both sides.

By default the rule is evaluated against the imported dataset. Pass
--csv to evaluate straight from a transactions file instead.

Metrics:
  support     fraction of all baskets containing both sides of the rule
  confidence  of the baskets containing the antecedent, the fraction
              that also contain the consequent
  lift        confidence divided by the consequent's baseline support;
              above 1 the antecedent makes the consequent more likely`,
		Example: `  # Evaluate against the imported dataset
  basketlift eval "bread -> butter"

  # Multi-item antecedent
  basketlift eval "bread, milk -> butter"

  # Evaluate straight from a CSV
  basketlift eval --csv transactions.csv "bread -> butter"`,
		Args: cobra.ExactArgs(1),
		RunE: runEval,
	}
)

func init() {
	evalCmd.Flags().StringVar(&evalCSV, "csv", "", "evaluate against a transactions CSV instead of the database")

	// Register with root command
	RootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	coll, err := loadCollection(evalCSV)
	if err != nil {
		return err
	}

	res, err := analyzer.EvaluateRule(coll, args[0])
	if err != nil {
		return err
	}

	fmt.Print(output.RenderResult(res))
	return nil
}

// loadCollection builds the basket collection for evaluation, either from
// a transactions CSV or from the imported dataset in the database.
func loadCollection(csvPath string) (basket.Collection, error) {
	if csvPath != "" {
		return basket.LoadCSV(csvPath)
	}

	path, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}

	coll, err := db.LoadCollection()
	if err != nil {
		return nil, err
	}
	if coll.Len() == 0 {
		return nil, fmt.Errorf("no dataset imported; run 'basketlift import <file.csv>' or pass --csv")
	}
	return coll, nil
}
