package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "blogc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "blogc.yaml"), "v1.0.0")
	require.NoError(t, err)
	assert.Empty(t, cfg.OutputDir)
	assert.Empty(t, cfg.MinEngineVersion)
	assert.Empty(t, cfg.LintWords)
}

func TestLoadValidConfig(t *testing.T) {
	path := writeFile(t, "outputDir: dist\nlintWords:\n  - banned\n")
	cfg, err := Load(path, "v1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, []string{"banned"}, cfg.LintWords)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeFile(t, "notAField: true\n")
	_, err := Load(path, "v1.0.0")
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestLoadRejectsCaseSensitivityOverride(t *testing.T) {
	path := writeFile(t, "caseSensitive: false\n")
	_, err := Load(path, "v1.0.0")
	require.Error(t, err)
	assert.IsType(t, &CaseSensitivityError{}, err)
}

func TestLoadRejectsNewerMinEngineVersion(t *testing.T) {
	path := writeFile(t, "minEngineVersion: v9.9.9\n")
	_, err := Load(path, "v1.0.0")
	require.Error(t, err)
	verr, ok := err.(*VersionError)
	require.True(t, ok, "expected *VersionError, got %T", err)
	assert.Equal(t, "v9.9.9", verr.Required)
}

func TestLoadAcceptsOlderMinEngineVersion(t *testing.T) {
	path := writeFile(t, "minEngineVersion: 0.1.0\n")
	cfg, err := Load(path, "v1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", cfg.MinEngineVersion)
}
