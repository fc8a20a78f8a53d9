package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmatch-dev/checkmatch/internal/model"
)

func TestSuggest_ExactAlias(t *testing.T) {
	r := New()
	col, ok := r.Suggest([]string{"Date", "Check Number", "Amount"}, model.RoleCheckNumber)
	require.True(t, ok)
	assert.Equal(t, "Check Number", col)
}

func TestSuggest_CaseInsensitiveSubstring(t *testing.T) {
	r := New()
	col, ok := r.Suggest([]string{"TXN_DATE", "CHECK NO.", "PAYEE NAME"}, model.RoleCheckNumber)
	require.True(t, ok)
	assert.Equal(t, "CHECK NO.", col)

	col, ok = r.Suggest([]string{"TXN_DATE", "CHECK NO.", "PAYEE NAME"}, model.RoleVendorName)
	require.True(t, ok)
	assert.Equal(t, "PAYEE NAME", col)
}

func TestSuggest_PriorityOrder(t *testing.T) {
	// "check number" outranks the bare "check" alias even though both match.
	r := New()
	col, ok := r.Suggest([]string{"Check Type", "Check Number"}, model.RoleCheckNumber)
	require.True(t, ok)
	assert.Equal(t, "Check Number", col)
}

func TestSuggest_NumAlias(t *testing.T) {
	r := New()
	col, ok := r.Suggest([]string{"Date", "Num", "Name"}, model.RoleCheckNumber)
	require.True(t, ok)
	assert.Equal(t, "Num", col)
}

func TestSuggest_NoMatch(t *testing.T) {
	r := New()
	_, ok := r.Suggest([]string{"Date", "Amount", "Memo"}, model.RoleCheckNumber)
	assert.False(t, ok)
}

func TestSuggest_EmptyColumns(t *testing.T) {
	r := New()
	_, ok := r.Suggest(nil, model.RoleVendorName)
	assert.False(t, ok)
}

func TestAddAliases_WinsOverBuiltins(t *testing.T) {
	r := New()
	r.AddAliases(model.RoleCheckNumber, "folio")
	col, ok := r.Suggest([]string{"Check Number", "Folio ID"}, model.RoleCheckNumber)
	require.True(t, ok)
	assert.Equal(t, "Folio ID", col)
}

func TestValidate_OK(t *testing.T) {
	table := model.NewTable("Check Number", "Vendor", "Amount")
	m := model.Mapping{CheckNumber: "Check Number", VendorName: "Vendor"}
	assert.NoError(t, Validate("target", m, table))
}

func TestValidate_UnmappedRole(t *testing.T) {
	table := model.NewTable("Check Number", "Vendor")
	m := model.Mapping{CheckNumber: "Check Number"}
	err := Validate("target", m, table)
	require.Error(t, err)

	var missing MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, model.RoleVendorName, missing.Role)
}

func TestValidate_UnknownColumn(t *testing.T) {
	table := model.NewTable("Check Number", "Vendor")
	m := model.Mapping{CheckNumber: "Check Number", VendorName: "Payee"}
	err := Validate("reference", m, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Payee"`)
	assert.Contains(t, err.Error(), "reference")
}
