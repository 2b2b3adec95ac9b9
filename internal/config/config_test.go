package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("verbosity: 2\nlog_file: /tmp/cinder.log\ncolor: false\nfilename: main.cn\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "/tmp/cinder.log", *cfg.LogPath())
	assert.False(t, cfg.UseColor())
	assert.Equal(t, "main.cn", cfg.Filename)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Verbosity)
	assert.Nil(t, cfg.LogPath())
	assert.True(t, cfg.UseColor())

	cfg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.True(t, cfg.UseColor())
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse([]byte("verbose: 1\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Parse([]byte("verbosity: -1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("verbosity: [1\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbosity: 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Verbosity)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestLoadMissingDefault(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
