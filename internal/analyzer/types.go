package analyzer

import "github.com/blackwell-systems/basketlift/internal/rule"

// Tally holds the basket membership counts for one rule evaluation.
type Tally struct {
	Antecedent int // baskets containing every antecedent item
	Consequent int // baskets containing every consequent item
	Both       int // baskets containing both sides in full
}

// Metrics are the association-rule statistics derived from a Tally.
type Metrics struct {
	Support    float64 // fraction of all baskets containing both sides
	Confidence float64 // of antecedent baskets, fraction also holding the consequent
	Lift       float64 // confidence relative to the consequent's baseline support
}

// Result is the outcome of evaluating one rule against one collection.
type Result struct {
	Rule         rule.Rule
	Tally        Tally
	TotalBaskets int
	Metrics      Metrics
}
