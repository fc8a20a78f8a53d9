package runlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmatch-dev/checkmatch/internal/match"
)

var testTime = time.Date(2025, 3, 12, 9, 45, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:           testTime,
		RunID:               "7f9c24e5-1c33-4f10-9d2b-0f0a9e6d0c11",
		TargetFile:          "QuickBooks_Upload.csv",
		TotalRows:           120,
		MatchedRows:         100,
		UnmatchedRows:       20,
		VendorNamesReplaced: 80,
		SkippedRows:         5,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "QuickBooks_Upload.csv", entries[0].TargetFile)
	assert.Equal(t, 100, entries[0].MatchedRows)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.TargetFile = "second.xlsx"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "QuickBooks_Upload.csv", entries[0].TargetFile)
	assert.Equal(t, "second.xlsx", entries[1].TargetFile)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, original, entries[0])
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestNew_FillsFromSummary(t *testing.T) {
	e := New("export.csv", match.Summary{
		TotalRows:           10,
		MatchedRows:         7,
		UnmatchedRows:       3,
		VendorNamesReplaced: 6,
		SkippedRows:         1,
	})

	assert.NotEmpty(t, e.RunID)
	assert.Equal(t, "export.csv", e.TargetFile)
	assert.Equal(t, 10, e.TotalRows)
	assert.Equal(t, 7, e.MatchedRows)
	assert.Equal(t, 3, e.UnmatchedRows)
	assert.Equal(t, 6, e.VendorNamesReplaced)
	assert.Equal(t, 1, e.SkippedRows)
	assert.WithinDuration(t, time.Now().UTC(), e.Timestamp, time.Minute)

	// Distinct runs get distinct IDs.
	assert.NotEqual(t, e.RunID, New("export.csv", match.Summary{}).RunID)
}

func TestUnmarshal_BadCount(t *testing.T) {
	rec := MarshalEntry(testEntry())
	rec[colTotal] = "many"
	_, err := UnmarshalEntry(rec)
	assert.Error(t, err)
}
