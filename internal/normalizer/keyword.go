package normalizer

import "regexp"

// rewrite is one phrase-to-symbol substitution rule.
type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// isNot must run before the bare IS rule below. Rewriting IS alone first
// would split "IS NOT" into "== NOT".
var isNot = regexp.MustCompile(`(?i)\bIS NOT\b`)

// keywordRewrites maps natural-language logic phrasing onto the canonical
// symbol set: IF, AND, OR, NOT, ==, >, <, TRUE, FALSE. Applied in order,
// whole-word, case-insensitive.
var keywordRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\b(IF|WHENEVER|PROVIDED THAT|ONLY WHEN)\b`), "IF"},
	{regexp.MustCompile(`(?i)\b(AND|ALSO|IN ADDITION TO)\b`), "AND"},
	{regexp.MustCompile(`(?i)\b(OR|EITHER|UNLESS)\b`), "OR"},
	{regexp.MustCompile(`(?i)\b(NOT|DIFFERENT FROM)\b`), "NOT"},
	{regexp.MustCompile(`(?i)\b(EQUALS|IS SAME AS|MATCHES)\b`), "=="},
	{regexp.MustCompile(`(?i)\b(GREATER THAN|ABOVE)\b`), ">"},
	{regexp.MustCompile(`(?i)\b(LESS THAN|BELOW)\b`), "<"},
	{regexp.MustCompile(`(?i)\b(TRUE|YES|ACTIVE)\b`), "TRUE"},
	{regexp.MustCompile(`(?i)\b(FALSE|NO|INACTIVE)\b`), "FALSE"},
	{regexp.MustCompile(`(?i)\b(IS)\b`), "=="},
}

// Keywords rewrites logical and comparison keyword synonyms in a line to
// their canonical tokens.
func Keywords(line string) string {
	line = isNot.ReplaceAllString(line, "NOT")
	for _, r := range keywordRewrites {
		line = r.pattern.ReplaceAllString(line, r.repl)
	}
	return line
}
