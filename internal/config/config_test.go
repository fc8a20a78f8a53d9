package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Matching.ExtractDigitsFromText = false
	cfg.Columns.CheckAliases = []string{"folio"}

	path := filepath.Join(t.TempDir(), "checkmatch.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Matching, got.Matching)
	assert.Equal(t, cfg.Output, got.Output)
	require.Len(t, got.Columns.CheckAliases, 1)
	assert.Equal(t, "folio", got.Columns.CheckAliases[0])
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Matching.TrimSpaces)
	assert.True(t, cfg.Matching.StringifyNumeric)
	assert.True(t, cfg.Matching.StripTrailingDotZero)
	assert.True(t, cfg.Matching.ExtractDigitsFromText)
	assert.Equal(t, "_Updated", cfg.Output.UpdatedSuffix)
	assert.Equal(t, "_Unmatched", cfg.Output.UnmatchedSuffix)
	assert.Equal(t, "_Backup", cfg.Output.BackupSuffix)
	assert.True(t, cfg.Output.WriteUnmatched)
	assert.True(t, cfg.Output.WriteBackup)
	assert.Empty(t, cfg.Columns.CheckAliases)
}

func TestOptionsConversion(t *testing.T) {
	cfg := Default()
	cfg.Matching.StripTrailingDotZero = false

	opts := cfg.Matching.Options()
	assert.True(t, opts.TrimSpaces)
	assert.False(t, opts.StripTrailingDotZero)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkmatch.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "trim_spaces: true")
	assert.Contains(t, contents, "extract_digits_from_text: true")
	assert.Contains(t, contents, "updated_suffix: _Updated")
}
