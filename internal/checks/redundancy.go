package checks

import (
	"fmt"
	"regexp"
	"strings"

	tt "github.com/pseudolang/plin/internal/types"
)

var (
	// Flat split on the canonical connectives. Parenthesized sub-groups are
	// not respected; nested boolean structure is out of scope.
	connectiveSplit = regexp.MustCompile(`\bAND\b|\bOR\b`)
	actionClause    = regexp.MustCompile(`\b(THEN|DO|ELSE)\b.*`)
	guardPrefix     = regexp.MustCompile(`^IF\s+`)
)

// DetectRedundantCondition splits a normalized line into condition atoms and
// reports the first atom that repeats an earlier one verbatim. At most one
// finding per line.
func DetectRedundantCondition(line tt.Line) []tt.Finding {
	seen := make(map[string]struct{})
	for _, cond := range connectiveSplit.Split(line.Normalized, -1) {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			continue
		}
		atom := actionClause.ReplaceAllString(cond, "")
		atom = guardPrefix.ReplaceAllString(atom, "")
		atom = strings.TrimSpace(atom)
		if atom == "" {
			continue
		}
		if _, dup := seen[atom]; dup {
			return []tt.Finding{{
				Rule:    RuleRedundantCondition,
				Message: fmt.Sprintf("Redundant condition '%s'", atom),
				Line:    line.Raw,
			}}
		}
		seen[atom] = struct{}{}
	}
	return nil
}
