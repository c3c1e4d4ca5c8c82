package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[data]
dir = "/srv/pawn"

[language]
default = "fr"
analyzer = "auto"

[morph]
cache_size = 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/pawn", cfg.Data.Dir)
	assert.Equal(t, DefaultConfig().Data.Lexicon, cfg.Data.Lexicon)
	assert.Equal(t, "fr", cfg.Language.Default)
	assert.Equal(t, "auto", cfg.Language.Analyzer)
	assert.Equal(t, 10, cfg.Morph.CacheSize)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// duplicate key breaks the typed decode and the generic one alike
	path := writeConfig(t, "[language]\ndefault = \"ru\"\ndefault = \"fr\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// wrong type for one key: typed decode fails, generic decode salvages the rest
	path = writeConfig(t, "[language]\ndefault = \"ru\"\n\n[server]\nmax_limit = \"lots\"\ndefault_pos = \"n\"\n")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Language.Default)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.Equal(t, "n", cfg.Server.DefaultPOS)
}

func TestFillDefaults(t *testing.T) {
	path := writeConfig(t, "[server]\nmax_limit = 0\ndefault_pos = \"\"\n[morph]\ncache_size = -3\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.Equal(t, "anrsv", cfg.Server.DefaultPOS)
	assert.Equal(t, 0, cfg.Morph.CacheSize)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigWithPriority(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	custom := writeConfig(t, "[language]\ndefault = \"fr\"\n")
	cfg, used, err := LoadConfigWithPriority(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, used)
	assert.Equal(t, "fr", cfg.Language.Default)

	cfg, used, err = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "pawn", "config.toml"), used)
	assert.Equal(t, "en", cfg.Language.Default)
}
