package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetSettings isolates a test from the user's settings and from other tests.
func resetSettings(t *testing.T) {
	t.Helper()
	viper.Reset()
	CfgFile = ""
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		viper.Reset()
		CfgFile = ""
	})
}

func TestInitConfigWithoutFile(t *testing.T) {
	resetSettings(t)

	require.NoError(t, InitConfig())
	assert.Equal(t, Settings{}, CurrentSettings())
}

func TestInitConfigExplicitFile(t *testing.T) {
	resetSettings(t)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "overlay:\n  path: overlays/dev.yaml\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	CfgFile = path

	require.NoError(t, InitConfig())
	assert.Equal(t, Settings{OverlayPath: "overlays/dev.yaml", LogLevel: "warn"}, CurrentSettings())
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	resetSettings(t)
	CfgFile = filepath.Join(t.TempDir(), "missing.yaml")

	assert.Error(t, InitConfig())
}

func TestInitConfigHomeFile(t *testing.T) {
	resetSettings(t)

	dir := BuildDirPath()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "overlay:\n  path: /tmp/home.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	require.NoError(t, InitConfig())
	assert.Equal(t, "/tmp/home.yaml", CurrentSettings().OverlayPath)
}

func TestInitConfigEnvironment(t *testing.T) {
	resetSettings(t)
	t.Setenv("ROGUE_OVERRIDES_OVERLAY_PATH", "/tmp/env.cue")
	t.Setenv("ROGUE_OVERRIDES_LOG_LEVEL", "error")

	require.NoError(t, InitConfig())
	assert.Equal(t, Settings{OverlayPath: "/tmp/env.cue", LogLevel: "error"}, CurrentSettings())
}

func TestBuildDirPath(t *testing.T) {
	resetSettings(t)
	home := os.Getenv("HOME")
	assert.Equal(t, filepath.Join(home, BaseDirName), BuildDirPath())
}
