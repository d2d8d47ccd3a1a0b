package checks

import (
	"regexp"
	"strings"

	"github.com/pseudolang/plin/internal/synonyms"
	tt "github.com/pseudolang/plin/internal/types"
)

var identTokens = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)

// DetectTypos flags identifier-like tokens that look misspelled: unknown to
// the synonym table, longer than four characters, and mixed-case (neither
// all-uppercase nor all-lowercase). Short tokens and uniformly-cased tokens
// are deliberately excluded to spare keywords, acronyms, and literals. An
// all-lowercase misspelling slips through; that gap is part of the contract.
func DetectTypos(line tt.Line, table *synonyms.Table) []tt.Finding {
	var typos []string
	for _, token := range identTokens.FindAllString(line.Normalized, -1) {
		if table.Known(token) {
			continue
		}
		if len(token) <= 4 {
			continue
		}
		if isUpperToken(token) || isLowerToken(token) {
			continue
		}
		typos = append(typos, token)
	}
	if len(typos) == 0 {
		return nil
	}
	return []tt.Finding{{
		Rule:    RuleVariableTypo,
		Message: "Potential typo(s) in variable name(s): " + strings.Join(typos, ", "),
		Line:    line.Raw,
	}}
}

// isUpperToken reports whether the token has at least one letter and every
// letter is uppercase. A token with no letters is neither upper nor lower
// and therefore stays eligible for flagging.
func isUpperToken(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func isLowerToken(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return false
		}
		if r >= 'a' && r <= 'z' {
			hasLetter = true
		}
	}
	return hasLetter
}
