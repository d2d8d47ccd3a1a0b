package formatter

import (
	"strings"

	"github.com/fatih/color"

	tt "github.com/pseudolang/plin/internal/types"
)

var (
	flagStyle     = color.New(color.FgRed, color.Bold)
	ruleStyle     = color.New(color.FgYellow, color.Bold)
	messageStyle  = color.New(color.FgRed)
	lineStyle     = color.New(color.FgCyan)
	fileStyle     = color.New(color.FgCyan, color.Bold)
	severityStyle = color.New(color.FgHiYellow, color.Bold)
)

// RenderResult renders one line's outcome in the plain output contract:
// the flag message for a finding, otherwise the normalized line text.
func RenderResult(r tt.Result) string {
	if !r.Flagged() {
		return r.Line.Normalized
	}
	return "FLAG: " + r.Finding.Message + " in line: " + r.Finding.Line
}

// Plain renders results one per line, in order, with no styling. This is
// the byte-exact reference output.
func Plain(results []tt.Result) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderResult(r))
	}
	return b.String()
}

// Pretty renders results for human terminals: findings are styled with
// their rule name and severity, clean lines are printed as-is. Color codes
// are stripped automatically on non-terminal output.
func Pretty(results []tt.Result) string {
	var b strings.Builder
	for _, r := range results {
		if !r.Flagged() {
			b.WriteString(r.Line.Normalized)
			b.WriteByte('\n')
			continue
		}
		f := r.Finding
		b.WriteString(flagStyle.Sprint("FLAG"))
		b.WriteString(severityStyle.Sprintf(" [%s]", f.Severity))
		b.WriteString(ruleStyle.Sprintf(" %s: ", f.Rule))
		b.WriteString(messageStyle.Sprint(f.Message))
		b.WriteByte('\n')
		b.WriteString(lineStyle.Sprintf("  --> %s", f.Line))
		b.WriteByte('\n')
	}
	return b.String()
}

// PrettyFile renders one file's results under a styled filename header.
func PrettyFile(path string, results []tt.Result) string {
	var b strings.Builder
	b.WriteString(fileStyle.Sprint(path))
	b.WriteByte('\n')
	b.WriteString(Pretty(results))
	return b.String()
}
