package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nsbin/internal/format"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "payload", cfg.Layout)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
encoding: utf-16le
layout: inplace
size_field: hex
backup: true
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "utf-16le", cfg.Encoding)
	assert.Equal(t, "inplace", cfg.Layout)
	assert.Equal(t, "hex", cfg.SizeField)
	assert.True(t, cfg.Backup)
	assert.Equal(t, "auto", cfg.Flush, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: sideways\nencoding: klingon\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, format.ErrUnknownLayout)
	assert.Contains(t, err.Error(), "klingon")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Backup = true
	cfg.SizeField = "hex"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/etc/nsbin.yaml")
	assert.Equal(t, "/etc/nsbin.yaml", DefaultPath())
}
