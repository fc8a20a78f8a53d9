package model

// ColumnRole identifies the semantic meaning of a mapped column.
type ColumnRole string

const (
	RoleCheckNumber ColumnRole = "check-number"
	RoleVendorName  ColumnRole = "vendor-name"
)

// Roles lists every role a mapping must resolve before matching runs.
var Roles = []ColumnRole{RoleCheckNumber, RoleVendorName}

// Mapping binds column roles to column names for one table.
type Mapping struct {
	CheckNumber string
	VendorName  string
}

// Column returns the column name bound to a role.
func (m Mapping) Column(role ColumnRole) string {
	switch role {
	case RoleCheckNumber:
		return m.CheckNumber
	case RoleVendorName:
		return m.VendorName
	}
	return ""
}

// WithColumn returns a copy of the mapping with one role rebound.
func (m Mapping) WithColumn(role ColumnRole, name string) Mapping {
	switch role {
	case RoleCheckNumber:
		m.CheckNumber = name
	case RoleVendorName:
		m.VendorName = name
	}
	return m
}
