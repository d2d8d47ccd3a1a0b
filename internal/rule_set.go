package internal

import (
	"github.com/pseudolang/plin/internal/checks"
	"github.com/pseudolang/plin/internal/synonyms"
	tt "github.com/pseudolang/plin/internal/types"
)

// Rule defines the interface for all detectors. Check returns the findings
// for one line; every detector here yields at most one.
type Rule interface {
	// Check runs the detector on the given line.
	Check(line tt.Line) []tt.Finding

	// Name returns the name of the rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type baseRule struct {
	severity tt.Severity
}

func (r *baseRule) Severity() tt.Severity     { return r.severity }
func (r *baseRule) SetSeverity(s tt.Severity) { r.severity = s }

type RedundantConditionRule struct{ baseRule }

func (r *RedundantConditionRule) Check(line tt.Line) []tt.Finding {
	return checks.DetectRedundantCondition(line)
}

func (r *RedundantConditionRule) Name() string {
	return checks.RuleRedundantCondition
}

type ContradictoryLogicRule struct{ baseRule }

func (r *ContradictoryLogicRule) Check(line tt.Line) []tt.Finding {
	return checks.DetectContradiction(line)
}

func (r *ContradictoryLogicRule) Name() string {
	return checks.RuleContradictoryLogic
}

type VariableTypoRule struct {
	baseRule
	table *synonyms.Table
}

func (r *VariableTypoRule) Check(line tt.Line) []tt.Finding {
	return checks.DetectTypos(line, r.table)
}

func (r *VariableTypoRule) Name() string {
	return checks.RuleVariableTypo
}

type IllogicalComparisonRule struct{ baseRule }

func (r *IllogicalComparisonRule) Check(line tt.Line) []tt.Finding {
	return checks.DetectIllogicalComparison(line)
}

func (r *IllogicalComparisonRule) Name() string {
	return checks.RuleIllogicalComparison
}

// ruleChain builds the detector chain in its fixed priority order:
// redundancy, contradiction, typo, illogical comparison. The engine
// short-circuits on the first rule that fires, so this order is part of the
// observable contract.
func ruleChain(table *synonyms.Table) []Rule {
	rules := []Rule{
		&RedundantConditionRule{},
		&ContradictoryLogicRule{},
		&VariableTypoRule{table: table},
		&IllogicalComparisonRule{},
	}
	for _, r := range rules {
		r.SetSeverity(tt.SeverityError)
	}
	return rules
}
