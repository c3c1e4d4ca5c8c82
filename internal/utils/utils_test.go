package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidToken(t *testing.T) {
	tests := map[string]bool{
		"chien":          true,
		"pomme_de_terre": true,
		"aujourd'hui":    true,
		"собака":         true,
		"caf\u00e9":      true,
		"":               false,
		"   ":            false,
		"1234":           false,
		"chien!":         false,
		"<script>":       false,
	}
	for in, want := range tests {
		assert.Equal(t, want, IsValidToken(in), in)
	}
}

func TestExtractHelpers(t *testing.T) {
	data := map[string]any{
		"data": map[string]any{"dir": "x", "n": int64(3), "b": true},
	}
	section, ok := ExtractSection(data, "data")
	require.True(t, ok)
	s, ok := ExtractString(section, "dir")
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	n, ok := ExtractInt64(section, "n")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	b, ok := ExtractBool(section, "b")
	assert.True(t, ok)
	assert.True(t, b)
	_, ok = ExtractString(section, "n")
	assert.False(t, ok)
	_, ok = ExtractSection(data, "missing")
	assert.False(t, ok)
}

func TestResolveDataDir(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsDataDir(dir))
	assert.Equal(t, dir, ResolveDataDir(dir, ""))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr_data.json"), []byte("{}"), 0o644))
	assert.True(t, IsDataDir(dir))
	assert.Equal(t, dir, ResolveDataDir(dir, ""))

	configDir := t.TempDir()
	dataDir := filepath.Join(configDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "ru_data.msgpack"), []byte{0x80}, 0o644))
	assert.Equal(t, dataDir, ResolveDataDir("does-not-exist", configDir))
}

func TestSaveAndLoadTOML(t *testing.T) {
	type cfg struct {
		Name string `toml:"name"`
	}
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, SaveTOMLFile(cfg{Name: "pawn"}, path))
	assert.True(t, FileExists(path))

	var got cfg
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, "pawn", got.Name)

	require.NoError(t, os.WriteFile(path, []byte("name = "), 0o644))
	assert.Error(t, LoadTOMLFile(path, &got))
	_, err := ParseTOMLWithRecovery(path)
	assert.Error(t, err)
}
