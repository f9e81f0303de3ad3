// Package rule parses association-rule expressions of the form
// "A,B -> C" into antecedent and consequent item sets.
package rule

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/basketlift/internal/basket"
)

// Separator splits a rule expression into its antecedent and consequent.
const Separator = "->"

// Rule is a parsed association rule: if a basket contains every
// antecedent item, how often does it also contain every consequent item.
type Rule struct {
	Antecedent basket.ItemSet
	Consequent basket.ItemSet
}

// String renders the rule in its canonical textual form.
func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s",
		strings.Join(r.Antecedent.Items(), ","),
		Separator,
		strings.Join(r.Consequent.Items(), ","))
}

// ParseError reports a malformed rule expression.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed rule %q: %s", e.Input, e.Reason)
}

// Parse turns a rule expression "A,B -> C" into a Rule. The expression
// must contain the "->" separator exactly once, and each side must yield
// at least one non-empty item after splitting on commas and trimming
// whitespace. Items may appear on both sides; overlap is not rejected.
func Parse(input string) (Rule, error) {
	parts := strings.Split(input, Separator)
	switch {
	case len(parts) < 2:
		return Rule{}, &ParseError{Input: input, Reason: "missing \"->\" separator"}
	case len(parts) > 2:
		return Rule{}, &ParseError{Input: input, Reason: "more than one \"->\" separator"}
	}

	antecedent := parseSide(parts[0])
	if antecedent.Len() == 0 {
		return Rule{}, &ParseError{Input: input, Reason: "empty antecedent"}
	}
	consequent := parseSide(parts[1])
	if consequent.Len() == 0 {
		return Rule{}, &ParseError{Input: input, Reason: "empty consequent"}
	}

	return Rule{Antecedent: antecedent, Consequent: consequent}, nil
}

// parseSide splits one side of a rule on commas, trimming whitespace and
// dropping empty tokens.
func parseSide(side string) basket.ItemSet {
	set := make(basket.ItemSet)
	for _, tok := range strings.Split(side, ",") {
		item := strings.TrimSpace(tok)
		if item != "" {
			set.Add(item)
		}
	}
	return set
}
