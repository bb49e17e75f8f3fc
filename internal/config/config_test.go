package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/butterflies/internal/dataset"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, dataset.DefaultParams(), cfg.Params())
	require.Equal(t, dataset.DefaultCriteria(), cfg.Criteria())
	require.Equal(t, dataset.DefaultSeed, cfg.Data.Seed)
}

func TestEnsureFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv(envConfig, path)

	require.NoError(t, EnsureFile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "[[data.groups]]")
	require.Contains(t, string(raw), "significant_probability")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestEnsureFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[data]\nseed = 9\n"), 0o644))

	require.NoError(t, EnsureFile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[data]\nseed = 9\n", string(raw))
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[data]",
		"seed = 7",
		"",
		"[[data.groups]]",
		`name = "only"`,
		"count = 10",
		"mean = 5.0",
		"spread = 1.0",
		"",
		"[filter]",
		"range_low = -20.0",
		"significant_only = true",
		"",
		"[ui]",
		`title = "Moths"`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(envConfig, path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(7), cfg.Data.Seed)
	require.Equal(t, []GroupConfig{{Name: "only", Count: 10, Mean: 5, Spread: 1}}, cfg.Data.Groups)
	require.Equal(t, -20.0, cfg.Filter.RangeLow)
	require.Equal(t, 150.0, cfg.Filter.RangeHigh)
	require.True(t, cfg.Filter.SignificantOnly)
	require.Equal(t, "Moths", cfg.UI.Title)
	require.Equal(t, Default().UI.Caption, cfg.UI.Caption)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("BUTTERFLIES_DATA_SEED", "1234")
	t.Setenv("BUTTERFLIES_FILTER_SIGNIFICANT_ONLY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(1234), cfg.Data.Seed)
	require.True(t, cfg.Filter.SignificantOnly)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[data]\nclip_low = 10.0\nclip_high = 5.0\n"), 0o644))
	t.Setenv(envConfig, path)

	_, err := Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no groups", func(c *Config) { c.Data.Groups = nil }},
		{"negative count", func(c *Config) { c.Data.Groups[0].Count = -1 }},
		{"negative spread", func(c *Config) { c.Data.Groups[1].Spread = -2 }},
		{"clip inverted", func(c *Config) { c.Data.ClipLow = c.Data.ClipHigh }},
		{"negative jitter", func(c *Config) { c.Data.Jitter = -0.1 }},
		{"probability high", func(c *Config) { c.Data.SignificantProbability = 1.5 }},
		{"probability low", func(c *Config) { c.Data.SignificantProbability = -0.1 }},
		{"chart height", func(c *Config) { c.UI.ChartHeight = 0 }},
	}
	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestPathPrefersEnv(t *testing.T) {
	t.Setenv(envConfig, "/tmp/custom.toml")
	p, err := Path()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.toml", p)
}
