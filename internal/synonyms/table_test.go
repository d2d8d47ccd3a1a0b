package synonyms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"UserType", "user_type"},
		{"userType", "user_type"},
		{"user_type", "user_type"},
		{"ID_of_user", "id_of_user"},
		{"current time", "current_time"},
		{"weird-Var", "weird_var"},
		{"purchaseAmount", "purchase_amount"},
		{"a  b\tc", "a_b_c"},
		{"ALLCAPS", "allcaps"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SnakeCase(tt.input), "SnakeCase(%q)", tt.input)
	}
}

func TestCanonicalLookup(t *testing.T) {
	t.Parallel()
	table := NewTable(nil)

	tests := []struct {
		name     string
		alias    string
		expected string
	}{
		{"exact alias match", "UserType", "user_type"},
		{"exact canonical", "user_id", "user_id"},
		{"case-style-normalized form", "user type", "user_type"},
		{"case-insensitive match", "acct_status", "account_status"},
		{"quoted alias", `"ID_of_user"`, "user_id"},
		{"fallback for unregistered", "totallyUnknown", "totally_unknown"},
		{"fallback keeps lowercase", "admin", "admin"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, table.Canonical(tt.alias))
		})
	}
}

func TestRegistered(t *testing.T) {
	t.Parallel()
	table := NewTable(nil)

	assert.True(t, table.Registered("UserType"))
	assert.True(t, table.Registered("type of user"))
	assert.True(t, table.Registered("TIME_NOW"))
	assert.False(t, table.Registered("admin"))
	assert.False(t, table.Registered("usrTyype"))
}

func TestKnown(t *testing.T) {
	t.Parallel()
	table := NewTable(nil)

	assert.True(t, table.Known("UserId"))
	assert.True(t, table.Known("user_id"))
	assert.True(t, table.Known("ACCOUNTSTATUS")) // case-insensitive against accountStatus
	assert.False(t, table.Known("nope"))
}

func TestExtraSynonymsMerge(t *testing.T) {
	t.Parallel()
	table := NewTable(map[string][]string{
		"order_total": {"orderTotal", "total_of_order"},
	})

	assert.Equal(t, "order_total", table.Canonical("orderTotal"))
	assert.Equal(t, "order_total", table.Canonical("TOTAL_OF_ORDER"))
	// built-ins survive the merge
	assert.Equal(t, "user_type", table.Canonical("uset_type"))
}

func TestAliasCollisionIsRecorded(t *testing.T) {
	t.Parallel()
	table := NewTable(map[string][]string{
		"other_name": {"UserType"},
	})

	require.Len(t, table.Collisions(), 1)
	// "other_name" sorts before "user_type", so it owns the alias.
	assert.Equal(t, "other_name", table.Canonical("UserType"))
}

func TestTableIsDeterministic(t *testing.T) {
	t.Parallel()
	a := NewTable(nil)
	b := NewTable(nil)
	assert.Equal(t, a.Canonicals(), b.Canonicals())
	for _, canon := range a.Canonicals() {
		assert.Equal(t, a.Aliases(canon), b.Aliases(canon))
	}
}
