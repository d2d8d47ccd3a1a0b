package checks

import (
	"fmt"
	"regexp"
	"strings"

	tt "github.com/pseudolang/plin/internal/types"
)

// comparison matches <token> <op> <value> where the value is either a
// quoted string or a single bare word token.
var comparison = regexp.MustCompile(
	`(\w+)\s*(==|!=|>|<)\s*(?:"([\w\s]+)"|'([\w\s]+)'|(\w+))`)

// DetectIllogicalComparison reasons only from quoting and digit shape, with
// no type inference. A quoted value made purely of digits was probably
// meant as a number; a bare non-numeric value was probably meant as a
// string.
func DetectIllogicalComparison(line tt.Line) []tt.Finding {
	var descriptions []string
	for _, m := range comparison.FindAllStringSubmatch(line.Normalized, -1) {
		switch {
		case m[3] != "" || m[4] != "":
			quoted := m[3]
			if quoted == "" {
				quoted = m[4]
			}
			if isDigits(strings.TrimSpace(quoted)) {
				descriptions = append(descriptions,
					fmt.Sprintf("Comparing string literal %q as number", strings.TrimSpace(quoted)))
			}
		case m[5] != "":
			if !isDigits(m[5]) {
				descriptions = append(descriptions,
					fmt.Sprintf("Comparing unquoted value %s as string", m[5]))
			}
		}
	}
	if len(descriptions) == 0 {
		return nil
	}
	return []tt.Finding{{
		Rule:    RuleIllogicalComparison,
		Message: "Illogical comparison: " + strings.Join(descriptions, ", "),
		Line:    line.Raw,
	}}
}
