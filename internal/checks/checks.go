// Package checks implements the heuristic analyzers that run over a
// normalized pseudo-code line. Each detector is best-effort: an unflagged
// line means no known pattern matched, not that the line is sound.
package checks

// Canonical rule names, also used as configuration keys.
const (
	RuleRedundantCondition  = "redundant-condition"
	RuleContradictoryLogic  = "contradictory-logic"
	RuleVariableTypo        = "variable-typo"
	RuleIllogicalComparison = "illogical-comparison"
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
