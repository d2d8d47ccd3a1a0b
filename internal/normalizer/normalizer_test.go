package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pseudolang/plin/internal/synonyms"
)

func TestKeywords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"whenever and equals", "whenever x equals 5", "IF x == 5"},
		{"provided that and above", "Provided that x above 3", "IF x > 3"},
		{"only when", "only when x matches y", "IF x == y"},
		{"unless and below", "unless count below 2", "OR count < 2"},
		{"in addition to", "a in addition to b", "a AND b"},
		{"different from", "status different from closed", "status NOT closed"},
		{"is not runs before bare is", "IF a IS NOT b", "IF a NOT b"},
		{"bare is", "IF a is b", "IF a == b"},
		{"yes becomes TRUE before is", "x is yes", "x == TRUE"},
		{"active and inactive", "user is active OR user is inactive", "user == TRUE OR user == FALSE"},
		{"already canonical", "IF x == 5 THEN go", "IF x == 5 THEN go"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Keywords(tt.input))
		})
	}
}

func TestLiterals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"x ==TRUE", "x == TRUE"},
		{"x ==   false", "x == FALSE"},
		{"x == TRUE", "x == TRUE"},
		{"y==FALSE", "y== FALSE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Literals(tt.input), "Literals(%q)", tt.input)
	}
}

func TestVariables(t *testing.T) {
	t.Parallel()
	n := New(synonyms.NewTable(nil))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"alias before operator",
			"IF ID_of_user > 100 THEN allow",
			"IF user_id > 100 THEN allow",
		},
		{
			"multi-word alias",
			"IF type of user == 1 THEN go",
			"IF user_type == 1 THEN go",
		},
		{
			"alias away from any operator via sweep",
			"THEN set time_now",
			"THEN set current_time",
		},
		{
			"two phrases in one line",
			"IF isAdmin AND user_ID > 5 THEN go",
			"IF is_user_admin AND user_id > 5 THEN go",
		},
		{
			"unregistered multi-word phrase converges",
			"IF weird Var == 1 THEN go",
			"IF weird_var == 1 THEN go",
		},
		{
			"unregistered single token is left alone",
			"IF usrTyype == 1 THEN go",
			"IF usrTyype == 1 THEN go",
		},
		{
			"keyword-only phrase is not an identifier",
			"IF NOT TRUE THEN go",
			"IF NOT TRUE THEN go",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, n.Variables(tt.input))
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	n := New(synonyms.NewTable(nil))

	tests := []struct {
		input    string
		expected string
	}{
		{
			`IF UserType IS "admin" THEN grant_access`,
			`IF user_type == "admin" THEN grant_access`,
		},
		{
			"whenever ID_of_user above 100 THEN allow",
			"IF user_id > 100 THEN allow",
		},
		{
			"IF accountStatus is active THEN proceed",
			"IF account_status == TRUE THEN proceed",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, n.Apply(tt.input), "Apply(%q)", tt.input)
	}
}

// A second application must never change the output of the first.
func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()
	n := New(synonyms.NewTable(nil))

	lines := []string{
		`IF UserType IS "admin" AND UserType IS "admin" THEN grant_access`,
		"whenever ID_of_user above 100 THEN allow",
		"IF purchase_amount equals \"50\" THEN flag_review",
		"IF acct_status is activ THEN proceed",
		"IF type of user == 1 THEN go",
		"unless item count below 2 do restock",
		"IF usrTyype IS NOT bdgNamee THEN warn",
		"THEN set time_now",
	}
	for _, line := range lines {
		once := n.Apply(line)
		assert.Equal(t, once, n.Apply(once), "input %q", line)
	}
}
