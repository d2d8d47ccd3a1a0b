package synonyms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// defaultSynonyms maps each canonical identifier to its known alias
// spellings. The canonical name itself is always listed among the aliases.
var defaultSynonyms = map[string][]string{
	"user_type":       {"UserType", "user_type", "type_of_user", "User_Type", "uset_type"},
	"account_status":  {"ACCT_STATUS", "accountStatus", "status_of_account", "Acct_Status", "account_status"},
	"customer_tier":   {"Customer_Tier", "customerTier", "tier_of_customer", "customer_tier"},
	"purchase_amount": {"purchaseAmount", "amount_of_purchase", "purchase_amount"},
	"user_id":         {"user_ID", "UserId", "userId", "user_id", "ID_of_user"},
	"current_time":    {"current_TIME", "CurrentTime", "currentTime", "current_time", "time_now"},
	"user_role":       {"User_Role", "user_role", "role_of_user", "userRole"},
	"item_count":      {"itemCount", "Item_Count", "count_of_items", "item_count"},
	"item_weight":     {"item_weight", "ItemWeight", "weight_of_item", "itemWeight"},
	"customer_rating": {"customer_rating", "CustomerRating", "rating_of_customer", "customerRating"},
	"user_status":     {"user_status", "UserStatus", "status_of_user", "userStatus"},
	"is_user_admin":   {"is_User_Admin", "is_user_admin", "isAdmin", "IsUserAdmin"},
}

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRuns = regexp.MustCompile(`[\s\-]+`)
)

// SnakeCase rewrites an identifier's casing and delimiters into a single
// lowercase, underscore-separated form. It inserts an underscore between a
// lowercase/digit character and a following uppercase character, collapses
// runs of whitespace and hyphens into one underscore, and lowercases the
// result.
func SnakeCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = separatorRuns.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// Table is the process-wide synonym table. It is immutable after
// construction and safe for concurrent readers.
type Table struct {
	entries map[string][]string // canonical -> aliases, as registered
	exact   map[string]string   // alias -> canonical
	lower   map[string]string   // lowercased alias -> canonical

	canonicals []string // sorted, for deterministic iteration
	collisions []string
}

// NewTable builds a Table from the built-in synonym set merged with extra
// entries. Extra aliases for an existing canonical are appended; duplicate
// aliases within one canonical are dropped case-insensitively.
func NewTable(extra map[string][]string) *Table {
	merged := make(map[string][]string, len(defaultSynonyms)+len(extra))
	for canon, aliases := range defaultSynonyms {
		merged[canon] = append([]string(nil), aliases...)
	}
	for canon, aliases := range extra {
		merged[canon] = append(merged[canon], aliases...)
	}

	t := &Table{
		entries: make(map[string][]string, len(merged)),
		exact:   make(map[string]string),
		lower:   make(map[string]string),
	}

	for canon := range merged {
		t.canonicals = append(t.canonicals, canon)
	}
	sort.Strings(t.canonicals)

	// Aliases are not guaranteed disjoint across canonical entries. The
	// index keeps the first registration in sorted canonical order and
	// records the collision instead of guessing.
	for _, canon := range t.canonicals {
		seen := make(map[string]struct{})
		// The canonical name is always a member of its own alias set.
		for _, alias := range append([]string{canon}, merged[canon]...) {
			key := strings.ToLower(alias)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if prev, ok := t.lower[key]; ok && prev != canon {
				t.collisions = append(t.collisions,
					fmt.Sprintf("alias %q registered for both %q and %q", alias, prev, canon))
				continue
			}
			t.entries[canon] = append(t.entries[canon], alias)
			t.exact[alias] = canon
			t.lower[key] = canon
		}
	}

	return t
}

// Canonical returns the canonical identifier for an alias. Lookup order:
// exact alias match, match on the case-style-normalized form, then
// case-insensitive match. Unregistered identifiers fall back to SnakeCase,
// so two differently-styled spellings of the same unregistered name still
// converge. Surrounding whitespace and quote characters are ignored.
func (t *Table) Canonical(alias string) string {
	v := strings.TrimSpace(alias)
	v = strings.ReplaceAll(v, "'", "")
	v = strings.ReplaceAll(v, `"`, "")

	if canon, ok := t.exact[v]; ok {
		return canon
	}
	if canon, ok := t.exact[SnakeCase(v)]; ok {
		return canon
	}
	if canon, ok := t.lower[strings.ToLower(v)]; ok {
		return canon
	}
	return SnakeCase(v)
}

// Registered reports whether the alias resolves to a registered canonical
// name, as opposed to the SnakeCase fallback.
func (t *Table) Registered(alias string) bool {
	v := strings.TrimSpace(alias)
	v = strings.ReplaceAll(v, "'", "")
	v = strings.ReplaceAll(v, `"`, "")

	if _, ok := t.exact[v]; ok {
		return true
	}
	if _, ok := t.exact[SnakeCase(v)]; ok {
		return true
	}
	_, ok := t.lower[strings.ToLower(v)]
	return ok
}

// Known reports whether the token is a registered alias or canonical name,
// compared case-insensitively. Used by the typo detector.
func (t *Table) Known(token string) bool {
	_, ok := t.lower[strings.ToLower(token)]
	return ok
}

// Canonicals returns the canonical names in sorted order.
func (t *Table) Canonicals() []string {
	return t.canonicals
}

// Aliases returns the registered aliases for a canonical name.
func (t *Table) Aliases(canonical string) []string {
	return t.entries[canonical]
}

// Collisions returns descriptions of aliases that were registered under
// more than one canonical name. The data as shipped has none; merged
// configuration may introduce them.
func (t *Table) Collisions() []string {
	return t.collisions
}
