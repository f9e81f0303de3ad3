package analyzer

// Epsilon is substituted for degenerate denominators so that metric
// derivation always yields finite values, never NaN or Inf.
const Epsilon = 1e-6

// ComputeMetrics derives support, confidence, and lift from a tally.
// totalBaskets is the size of the original unfiltered collection and
// must be at least 1; the orchestrator guards that precondition.
//
// When the antecedent never occurs, Epsilon stands in for the zero
// denominator. The consequent-support divisor for lift is floored at
// Epsilon for the same reason, so a consequent that never occurs yields
// a large finite lift rather than a division by zero.
func ComputeMetrics(tally Tally, totalBaskets int) Metrics {
	total := float64(totalBaskets)

	support := float64(tally.Both) / total

	antecedent := float64(tally.Antecedent)
	if antecedent == 0 {
		antecedent = Epsilon
	}
	confidence := float64(tally.Both) / antecedent

	consequentSupport := float64(tally.Consequent) / total
	if consequentSupport < Epsilon {
		consequentSupport = Epsilon
	}
	lift := confidence / consequentSupport

	return Metrics{Support: support, Confidence: confidence, Lift: lift}
}
