package checks

import (
	"regexp"
	"strings"

	tt "github.com/pseudolang/plin/internal/types"
)

// ifGuard captures the variable and compared value of an IF guard followed
// by an action keyword.
var ifGuard = regexp.MustCompile(`\bIF\s+(.+?)\s*==\s*(.+?)\s+(?:THEN|DO)\b`)

// DetectContradiction looks for the narrow shape
//
//	IF <var> == <val> THEN|DO ... ELSE IF <var> == <val>
//
// where variable and value are textually identical in both branches: the
// second guard duplicates the first, so its branch can never be reached.
// This is a position-sensitive pattern match, not general contradiction
// detection; x > 5 followed by x < 5 is not caught.
func DetectContradiction(line tt.Line) []tt.Finding {
	s := line.Normalized
	for _, m := range ifGuard.FindAllStringSubmatchIndex(s, -1) {
		variable := s[m[2]:m[3]]
		value := s[m[4]:m[5]]
		if duplicateGuardFollows(s[m[1]:], variable, value) {
			return []tt.Finding{{
				Rule:    RuleContradictoryLogic,
				Message: "Contradictory/unreachable logic",
				Line:    line.Raw,
			}}
		}
	}
	return nil
}

func duplicateGuardFollows(rest, variable, value string) bool {
	needle := "ELSE IF " + variable + " == " + value
	for {
		idx := strings.Index(rest, needle)
		if idx < 0 {
			return false
		}
		end := idx + len(needle)
		if end == len(rest) || !isWordByte(rest[end]) {
			return true
		}
		rest = rest[end:]
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
