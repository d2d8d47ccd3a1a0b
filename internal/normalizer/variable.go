package normalizer

import (
	"regexp"
	"strings"

	"github.com/pseudolang/plin/internal/synonyms"
)

// identBeforeOp captures an identifier-like phrase (snake_case, camelCase,
// space or hyphen separated) sitting immediately before a comparison or
// logical operator.
var identBeforeOp = regexp.MustCompile(
	`([A-Za-z_][A-Za-z0-9_]*(?:[ \-][A-Za-z0-9_]+)*)[ \t]*(==|!=|>|<|AND\b|OR\b|NOT\b)`)

// canonicalKeywords are tokens the variable pass must never treat as part of
// an identifier. The keyword pass has already uppercased their synonyms.
var canonicalKeywords = map[string]struct{}{
	"IF": {}, "THEN": {}, "DO": {}, "ELSE": {},
	"AND": {}, "OR": {}, "NOT": {}, "TRUE": {}, "FALSE": {},
}

// Normalizer rewrites identifier aliases in a line to their canonical names.
// Construct once per table; safe for concurrent use.
type Normalizer struct {
	table *synonyms.Table
	sweep []sweepRule
}

type sweepRule struct {
	pattern   *regexp.Regexp
	canonical string
}

// New builds a Normalizer over the given synonym table. Every registered
// alias gets a precompiled whole-word, case-insensitive sweep rule.
func New(table *synonyms.Table) *Normalizer {
	n := &Normalizer{table: table}
	for _, canon := range table.Canonicals() {
		for _, alias := range table.Aliases(canon) {
			if alias == canon {
				continue
			}
			n.sweep = append(n.sweep, sweepRule{
				pattern:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(alias) + `\b`),
				canonical: canon,
			})
		}
	}
	return n
}

// Apply runs the three normalization passes in their documented order:
// keywords, variables, literals. Idempotent.
func (n *Normalizer) Apply(line string) string {
	return Literals(n.Variables(Keywords(line)))
}

// Variables canonicalizes identifiers in a line. Two passes: a positional
// pass rewriting identifier phrases that appear immediately before an
// operator, then a table-wide sweep replacing every registered alias
// occurrence regardless of position. Expects keyword-normalized input.
func (n *Normalizer) Variables(line string) string {
	var b strings.Builder
	last := 0
	for _, m := range identBeforeOp.FindAllStringSubmatchIndex(line, -1) {
		phraseStart, phraseEnd := m[2], m[3]
		phrase := line[phraseStart:phraseEnd]

		off := identStart(phrase)
		if off < 0 {
			continue
		}
		ident := phrase[off:]

		repl, ok := n.canonicalForm(ident)
		if !ok || repl == ident {
			continue
		}
		b.WriteString(line[last : phraseStart+off])
		b.WriteString(repl)
		last = phraseEnd
	}
	b.WriteString(line[last:])
	line = b.String()

	for _, rule := range n.sweep {
		line = rule.pattern.ReplaceAllString(line, rule.canonical)
	}
	return line
}

// canonicalForm resolves the identifier phrase to the form it should take
// in the normalized line. Registered names resolve through the table.
// Unregistered multi-word phrases take the case-style fallback so that
// differently-styled spellings converge. Unregistered single tokens are
// left alone; rewriting them would hide misspellings from the typo check.
func (n *Normalizer) canonicalForm(ident string) (string, bool) {
	if n.table.Registered(ident) {
		return n.table.Canonical(ident), true
	}
	if strings.ContainsAny(ident, " -") {
		return synonyms.SnakeCase(ident), true
	}
	return "", false
}

// identStart returns the byte offset where the identifier proper begins
// inside a captured phrase, skipping leading keyword tokens (e.g. the IF in
// "IF user_type"). Returns -1 when the phrase is keywords throughout.
func identStart(phrase string) int {
	start := -1
	tokStart := 0
	for i := 0; i <= len(phrase); i++ {
		if i < len(phrase) && phrase[i] != ' ' && phrase[i] != '-' {
			continue
		}
		tok := phrase[tokStart:i]
		if _, kw := canonicalKeywords[tok]; kw {
			start = -1
		} else if start < 0 {
			start = tokStart
		}
		tokStart = i + 1
	}
	return start
}
