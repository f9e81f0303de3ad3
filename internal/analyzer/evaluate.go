package analyzer

import (
	"github.com/blackwell-systems/basketlift/internal/basket"
	"github.com/blackwell-systems/basketlift/internal/rule"
)

// Evaluate scans the collection once and tallies how many baskets contain
// the rule's antecedent, its consequent, and both. Baskets containing
// neither side contribute nothing. The result does not depend on
// iteration order, and the collection is never mutated.
func Evaluate(coll basket.Collection, r rule.Rule) Tally {
	var tally Tally
	for _, items := range coll {
		hasAntecedent := items.ContainsAll(r.Antecedent)
		hasConsequent := items.ContainsAll(r.Consequent)
		if !hasAntecedent && !hasConsequent {
			continue
		}

		if hasAntecedent {
			tally.Antecedent++
		}
		if hasConsequent {
			tally.Consequent++
		}
		if hasAntecedent && hasConsequent {
			tally.Both++
		}
	}
	return tally
}
