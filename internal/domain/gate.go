package domain

import (
	"fmt"
	"math"
	"strconv"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// Gate decides whether a set of totals satisfies the configured thresholds.
type Gate interface {
	Evaluate(totals m.Totals, thresholds m.Thresholds) m.GateVerdict
}

type gate struct{}

// NewGate creates a Gate.
func NewGate() Gate {
	return gate{}
}

// Evaluate runs every enabled check and collects all violations.
func (gate) Evaluate(totals m.Totals, thresholds m.Thresholds) m.GateVerdict {
	verdict := m.GateVerdict{Totals: totals}

	if thresholds.MutationScore != 0 && totals.MutationScore() < float64(thresholds.MutationScore) {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
			"mutation score of %s (%d/%d) is below threshold of %d",
			formatPercent(totals.MutationScore()), totals.MutationsDetected, totals.MutationsTotal,
			thresholds.MutationScore))
	}

	if thresholds.TestStrength != 0 && totals.TestStrength() < float64(thresholds.TestStrength) {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
			"test strength of %s (%d/%d) is below threshold of %d",
			formatPercent(totals.TestStrength()), totals.MutationsDetected, totals.MutationsWithCoverage,
			thresholds.TestStrength))
	}

	if thresholds.LineCoverage != 0 && totals.LineCoverage() < float64(thresholds.LineCoverage) {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
			"line coverage of %s (%d/%d) is below threshold of %d",
			formatPercent(totals.LineCoverage()), totals.LinesCovered, totals.LinesTotal,
			thresholds.LineCoverage))
	}

	if thresholds.MaxSurviving >= 0 && totals.SurvivingMutations() > thresholds.MaxSurviving {
		verdict.Reasons = append(verdict.Reasons, fmt.Sprintf(
			"had %d surviving mutants, but only %d survivors allowed",
			totals.SurvivingMutations(), thresholds.MaxSurviving))
	}

	return verdict
}

// formatPercent prints at most three decimals and drops trailing zeros, so 75
// prints as "75" and 49.9990 as "49.999".
func formatPercent(value float64) string {
	const scale = 1000

	return strconv.FormatFloat(math.Round(value*scale)/scale, 'f', -1, 64)
}
