package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nsbin/internal/config"
)

func TestConfigShow(t *testing.T) {
	resetGlobals(t)
	cfg.Layout = "inplace"

	output, err := captureOutput(t, runConfigShow)
	require.NoError(t, err)
	assertContains(t, output, []string{"layout: inplace", "encoding: utf-8", "size_field: binary"})

	jsonOut = true
	output, err = captureOutput(t, runConfigShow)
	require.NoError(t, err)
	res := decodeJSON(t, output)
	assert.Equal(t, "inplace", res["layout"])
}

func TestConfigInit(t *testing.T) {
	resetGlobals(t)
	configPath = filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg.SizeField = "hex"

	output, err := captureOutput(t, runConfigInit)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote")

	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "hex", loaded.SizeField)

	_, err = captureOutput(t, runConfigInit)
	require.ErrorContains(t, err, "already exists")

	configForce = true
	t.Cleanup(func() { configForce = false })
	cfg.SizeField = "binary"
	_, err = captureOutput(t, runConfigInit)
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "size_field: binary")
}
