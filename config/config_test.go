// ABOUTME: Tests for sheet config persistence and the /exec validation rule
// ABOUTME: Covers XDG path handling, env overrides, and mode selection
package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempDataHome(t *testing.T) {
	t.Helper()
	orig := xdg.DataHome
	xdg.DataHome = t.TempDir()
	t.Cleanup(func() { xdg.DataHome = orig })
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join(xdg.DataHome, "roster"), Dir())
	assert.Equal(t, "sheet-config.json", filepath.Base(Path()))
}

func TestLoad_NotFoundSelectsMockMode(t *testing.T) {
	withTempDataHome(t)

	cfg, err := Load()
	require.NoError(t, err, "missing config should not be an error")
	assert.False(t, cfg.IsRemote(), "no script URL means mock mode")
	assert.Empty(t, cfg.AppPassword)
}

func TestSaveAndLoad(t *testing.T) {
	withTempDataHome(t)

	original := &SheetConfig{
		ScriptURL:   "https://script.google.com/macros/s/abc123/exec",
		AppPassword: "hunter2",
	}
	require.NoError(t, Save(original))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original.ScriptURL, loaded.ScriptURL)
	assert.Equal(t, original.AppPassword, loaded.AppPassword)
	assert.True(t, loaded.IsRemote())
}

func TestSave_RejectsEditorURL(t *testing.T) {
	withTempDataHome(t)

	cfg := &SheetConfig{ScriptURL: "https://script.google.com/macros/s/abc123/edit"}
	err := Save(cfg)
	require.Error(t, err, "save must be rejected before any network call")
	assert.ErrorIs(t, err, ErrInvalidScriptURL)
}

func TestValidate_EmptyURLIsFine(t *testing.T) {
	cfg := &SheetConfig{}
	assert.NoError(t, cfg.Validate(), "mock mode needs no URL validation")
}

func TestLoad_EnvOverrides(t *testing.T) {
	withTempDataHome(t)

	require.NoError(t, Save(&SheetConfig{
		ScriptURL:   "https://script.google.com/macros/s/file/exec",
		AppPassword: "from-file",
	}))

	t.Setenv("ROSTER_SCRIPT_URL", "https://script.google.com/macros/s/env/exec")
	t.Setenv("ROSTER_APP_PASSWORD", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://script.google.com/macros/s/env/exec", cfg.ScriptURL, "env should override file")
	assert.Equal(t, "from-env", cfg.AppPassword)
}
