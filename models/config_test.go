package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
origin: https://leetcode.cn
log_level: debug
fetch:
  timeout: 5s
  cache_dir: /tmp/algosensei-cache
selectors:
  problem_class: problem-body
  error_panel: "xpath://div[@data-e2e-locator='console-result']"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://leetcode.cn", cfg.Origin)
	assert.Equal(t, DefaultPanelPath, cfg.PanelPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 3, cfg.Fetch.Retries)
	assert.Equal(t, "/tmp/algosensei-cache", cfg.Fetch.CacheDir)

	assert.Equal(t, "problem-body", cfg.Selectors.ProblemClass)
	assert.Equal(t, "xpath://div[@data-e2e-locator='console-result']", cfg.Selectors.ErrorPanel)
	assert.Equal(t, DefaultSelectors().ViewLineClass, cfg.Selectors.ViewLineClass)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "origin: [unterminated")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSelectorsOverride_EmptyKeepsCurrent(t *testing.T) {
	assert.Equal(t, DefaultSelectors(), DefaultSelectors().Override(Selectors{}))
}
