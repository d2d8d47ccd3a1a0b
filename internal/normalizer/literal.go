package normalizer

import "regexp"

var (
	trueSpacing  = regexp.MustCompile(`(?i)==\s*TRUE`)
	falseSpacing = regexp.MustCompile(`(?i)==\s*FALSE`)
)

// Literals canonicalizes spacing around boolean literal comparisons so that
// exactly one space surrounds "== TRUE" and "== FALSE". Purely cosmetic.
func Literals(line string) string {
	line = trueSpacing.ReplaceAllString(line, "== TRUE")
	return falseSpacing.ReplaceAllString(line, "== FALSE")
}
