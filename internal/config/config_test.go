package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesHackMemoryLayout(t *testing.T) {
	cfg := Default()
	assert.EqualValues(t, 256, cfg.Memory.StackBase)
	assert.EqualValues(t, 5, cfg.Memory.TempBase)
	assert.EqualValues(t, 3, cfg.Memory.PointerBase)
	assert.EqualValues(t, 239, cfg.Memory.MaxStatic)
	assert.False(t, cfg.Bootstrap.Enabled)
	assert.Equal(t, "Sys.init", cfg.Bootstrap.EntryPoint)
	assert.False(t, cfg.Diagnostics.Verbose)
}

func TestLoadFromEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverridesOnlyMentionedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmtranslator.toml")
	contents := "[bootstrap]\nenabled = true\nentry_point = \"Main.main\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, cfg.Bootstrap.Enabled)
	assert.Equal(t, "Main.main", cfg.Bootstrap.EntryPoint)
	assert.EqualValues(t, 256, cfg.Memory.StackBase)
}

func TestLoadFromMalformedTomlFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vmtranslator.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
