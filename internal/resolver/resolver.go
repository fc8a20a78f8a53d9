// Package resolver maps variable input column names to the semantic roles
// the match engine needs. It inspects header names only, never row values.
package resolver

import (
	"fmt"
	"strings"

	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// Alias candidates per role, highest priority first. Matching is a
// case-insensitive substring test against the column name.
var defaultAliases = map[model.ColumnRole][]string{
	model.RoleCheckNumber: {
		"check number",
		"checkno",
		"ref no",
		"num",
		"document no",
		"check #",
		"cheque #",
		"check",
		"cheque",
	},
	model.RoleVendorName: {
		"vendor",
		"payee",
		"name",
		"vendor name",
	},
}

// MissingColumnError reports a role whose mapped column does not exist in
// the table it was scoped to.
type MissingColumnError struct {
	Table  string
	Role   model.ColumnRole
	Column string
}

func (e MissingColumnError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s table: no column mapped for %s", e.Table, e.Role)
	}
	return fmt.Sprintf("%s table: %s column %q not found", e.Table, e.Role, e.Column)
}

// Resolver suggests column names for roles from prioritized alias lists.
type Resolver struct {
	aliases map[model.ColumnRole][]string
}

// New returns a Resolver with the built-in alias lists.
func New() *Resolver {
	aliases := make(map[model.ColumnRole][]string, len(defaultAliases))
	for role, list := range defaultAliases {
		aliases[role] = append([]string(nil), list...)
	}
	return &Resolver{aliases: aliases}
}

// AddAliases prepends user-supplied candidates for a role, so they win
// over the built-in list.
func (r *Resolver) AddAliases(role model.ColumnRole, names ...string) {
	if len(names) == 0 {
		return
	}
	r.aliases[role] = append(append([]string(nil), names...), r.aliases[role]...)
}

// Suggest returns the best-effort column name for a role, or false when no
// alias matches any column.
func (r *Resolver) Suggest(columns []string, role model.ColumnRole) (string, bool) {
	for _, candidate := range r.aliases[role] {
		needle := strings.ToLower(strings.TrimSpace(candidate))
		if needle == "" {
			continue
		}
		for _, col := range columns {
			if strings.Contains(strings.ToLower(strings.TrimSpace(col)), needle) {
				return col, true
			}
		}
	}
	return "", false
}

// Validate checks that every required role in a mapping names an existing
// column. It fails fast so no row processing starts on a broken mapping.
func Validate(tableName string, mapping model.Mapping, table *model.Table) error {
	for _, role := range model.Roles {
		col := mapping.Column(role)
		if col == "" {
			return MissingColumnError{Table: tableName, Role: role}
		}
		if table.ColumnIndex(col) < 0 {
			return MissingColumnError{Table: tableName, Role: role, Column: col}
		}
	}
	return nil
}
