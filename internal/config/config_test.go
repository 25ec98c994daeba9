package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stickypager/internal/sticky"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, sticky.HeaderMetrics{MinHeight: 64, MaxHeight: 200, MaxStretch: 60}, cfg.Metrics())
	assert.Len(t, cfg.Pages, 3)
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[header]
max_height = 240
max_stretch = 30

[reload]
relayout_on_failure = true

[[pages]]
title = "Inbox"
rows = 12
reloadable = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 64.0, cfg.Header.MinHeight, "unset keys keep defaults")
	assert.Equal(t, 240.0, cfg.Header.MaxHeight)
	assert.Equal(t, 30.0, cfg.Header.MaxStretch)
	assert.True(t, cfg.Reload.RelayoutOnFailure)
	assert.Equal(t, []PageConfig{{Title: "Inbox", Rows: 12, Reloadable: true}}, cfg.Pages)
}

func TestLoadFileKeepsDemoPagesWhenUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nwidth = 400\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.UI.Width)
	assert.Equal(t, DefaultConfig().Pages, cfg.Pages)
}

func TestLoadFileRejectsDegenerateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[header]\nmin_height = 300\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[header\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"navbar taller than header": func(c *Config) { c.NavBar.Height = 500 },
		"negative spinner":          func(c *Config) { c.Reload.SpinnerHeight = -1 },
		"threshold above one":       func(c *Config) { c.Reload.AnimateThreshold = 2 },
		"negative latency":          func(c *Config) { c.Reload.LatencyMS = -5 },
		"zero window":               func(c *Config) { c.UI.Width = 0 },
		"negative rows":             func(c *Config) { c.Pages[0].Rows = -1 },
		"safe top past window":      func(c *Config) { c.UI.SafeTop = float64(c.UI.Height) },
		"negative last page":        func(c *Config) { c.UI.LastPage = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Header.Title = "Saved"
	cfg.UI.LastPage = 2
	cfg.Pages = cfg.Pages[:1]
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Saved", got.Header.Title)
	assert.Equal(t, 2, got.UI.LastPage)
	require.Len(t, got.Pages, 1)
	assert.Equal(t, []string{"Top", "Latest"}, got.Pages[0].Feeds)
}

func TestPageFeedNames(t *testing.T) {
	assert.Equal(t, []string{"About"}, PageConfig{Title: "About"}.FeedNames())
	assert.Equal(t, []string{"a", "b"}, PageConfig{Title: "X", Feeds: []string{"a", "b"}}.FeedNames())
}

func TestConfigDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stickypager"), got)
}
