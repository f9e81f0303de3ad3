// Package analyzer implements the rule-evaluation pipeline: tallying
// basket membership against a parsed rule and deriving support,
// confidence, and lift from the counts.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/basketlift/internal/basket"
	"github.com/blackwell-systems/basketlift/internal/rule"
)

// ErrEmptyCollection is returned when a rule is evaluated against a
// collection with no baskets. Metric denominators are undefined there,
// so the evaluation aborts instead of producing a degenerate result.
var ErrEmptyCollection = errors.New("basket collection is empty")

// EvaluateRule parses ruleExpr, tallies it against the collection, and
// derives the metrics. The total basket count fed to the calculator is
// always the size of the full collection, regardless of how many baskets
// the tally pass skipped.
func EvaluateRule(coll basket.Collection, ruleExpr string) (*Result, error) {
	r, err := rule.Parse(ruleExpr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule: %w", err)
	}

	total := coll.Len()
	if total == 0 {
		return nil, ErrEmptyCollection
	}

	tally := Evaluate(coll, r)

	return &Result{
		Rule:         r,
		Tally:        tally,
		TotalBaskets: total,
		Metrics:      ComputeMetrics(tally, total),
	}, nil
}
