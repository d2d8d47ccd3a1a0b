package internal

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pseudolang/plin/internal/normalizer"
	"github.com/pseudolang/plin/internal/synonyms"
	tt "github.com/pseudolang/plin/internal/types"
)

// Engine manages the line-checking process: normalization followed by the
// ordered detector chain. Immutable after construction apart from rule
// ignores, so one Engine serves concurrent line processing.
type Engine struct {
	table        *synonyms.Table
	norm         *normalizer.Normalizer
	rules        []Rule
	ignoredRules map[string]bool
}

// NewEngine creates a new check engine. Extra synonyms are merged into the
// built-in table; rule severities from configuration override the defaults,
// with SeverityOff removing a detector from the chain.
func NewEngine(extraSynonyms map[string][]string, rules map[string]tt.ConfigRule) (*Engine, error) {
	table := synonyms.NewTable(extraSynonyms)
	engine := &Engine{
		table: table,
		norm:  normalizer.New(table),
		rules: ruleChain(table),
	}

	for key, cfg := range rules {
		rule := engine.findRule(key)
		if rule == nil {
			return nil, fmt.Errorf("unknown rule in configuration: %q", key)
		}
		if cfg.Severity == tt.SeverityOff {
			engine.IgnoreRule(key)
			continue
		}
		rule.SetSeverity(cfg.Severity)
	}

	return engine, nil
}

func (e *Engine) findRule(name string) Rule {
	for _, r := range e.rules {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// IgnoreRule removes a rule from the chain by name. The remaining detectors
// keep their relative priority.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// Table exposes the engine's synonym table, read-only.
func (e *Engine) Table() *synonyms.Table {
	return e.table
}

// ProcessLine runs one raw input line through normalization and the
// detector chain. The second return value is false for blank lines, which
// produce no output at all. Detectors run in fixed priority order and the
// first non-empty result is the only finding surfaced for the line.
func (e *Engine) ProcessLine(raw string) (tt.Result, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return tt.Result{}, false
	}

	line := tt.Line{
		Raw:        raw,
		Normalized: e.norm.Apply(raw),
	}

	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		findings := rule.Check(line)
		if len(findings) == 0 {
			continue
		}
		finding := findings[0]
		finding.Severity = rule.Severity()
		return tt.Result{Line: line, Finding: &finding}, true
	}

	return tt.Result{Line: line}, true
}

// Run applies the pipeline to the given file and returns one Result per
// non-blank line, in input order.
func (e *Engine) Run(filename string) ([]tt.Result, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return e.RunSource(content)
}

// RunSource applies the pipeline to raw source text. Lines are independent
// of each other, so they are processed in parallel; output order is
// reconstructed to match input order.
func (e *Engine) RunSource(source []byte) ([]tt.Result, error) {
	lines := strings.Split(string(source), "\n")
	slots := make([]*tt.Result, len(lines))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, raw := range lines {
		i, raw := i, raw
		g.Go(func() error {
			if res, ok := e.ProcessLine(raw); ok {
				slots[i] = &res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]tt.Result, 0, len(lines))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}
