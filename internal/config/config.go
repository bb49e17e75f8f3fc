package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/jask/butterflies/internal/dataset"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Data   DataConfig   `mapstructure:"data" toml:"data"`
	Filter FilterConfig `mapstructure:"filter" toml:"filter"`
	UI     UIConfig     `mapstructure:"ui" toml:"ui"`
}

// DataConfig controls synthetic generation.
type DataConfig struct {
	Seed                   int64         `mapstructure:"seed" toml:"seed"`
	ClipLow                float64       `mapstructure:"clip_low" toml:"clip_low"`
	ClipHigh               float64       `mapstructure:"clip_high" toml:"clip_high"`
	Jitter                 float64       `mapstructure:"jitter" toml:"jitter"`
	SignificantProbability float64       `mapstructure:"significant_probability" toml:"significant_probability"`
	Groups                 []GroupConfig `mapstructure:"groups" toml:"groups"`
}

type GroupConfig struct {
	Name   string  `mapstructure:"name" toml:"name"`
	Count  int     `mapstructure:"count" toml:"count"`
	Mean   float64 `mapstructure:"mean" toml:"mean"`
	Spread float64 `mapstructure:"spread" toml:"spread"`
}

// FilterConfig holds the filter the dashboard opens with.
type FilterConfig struct {
	RangeLow        float64 `mapstructure:"range_low" toml:"range_low"`
	RangeHigh       float64 `mapstructure:"range_high" toml:"range_high"`
	SignificantOnly bool    `mapstructure:"significant_only" toml:"significant_only"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string `mapstructure:"title" toml:"title"`
	Caption     string `mapstructure:"caption" toml:"caption"`
	ChartHeight int    `mapstructure:"chart_height" toml:"chart_height"`
}

const (
	envPrefix  = "BUTTERFLIES"
	envConfig  = "BUTTERFLIES_CONFIG"
	configName = "config"
)

// Default returns the built-in configuration.
func Default() Config {
	p := dataset.DefaultParams()
	groups := make([]GroupConfig, 0, len(p.Groups))
	for _, g := range p.Groups {
		groups = append(groups, GroupConfig{Name: g.Name, Count: g.Count, Mean: g.Mean, Spread: g.Spread})
	}
	c := dataset.DefaultCriteria()
	return Config{
		Data: DataConfig{
			Seed:                   dataset.DefaultSeed,
			ClipLow:                p.ClipLow,
			ClipHigh:               p.ClipHigh,
			Jitter:                 p.JitterSpread,
			SignificantProbability: p.SignificantProbability,
			Groups:                 groups,
		},
		Filter: FilterConfig{RangeLow: c.Low, RangeHigh: c.High, SignificantOnly: c.SignificantOnly},
		UI: UIConfig{
			Title:       "Change in butterfly abundance, 2000-20",
			Caption:     "Each dot represents one species. Outlined dots indicate statistically significant trends.",
			ChartHeight: 14,
		},
	}
}

// Path returns the config file location: $BUTTERFLIES_CONFIG when set,
// otherwise config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "butterflies", configName+".toml"), nil
}

// EnsureFile writes the default configuration to path if nothing exists there.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("# butterflies dashboard configuration\n\n"); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	return nil
}

// Load reads configuration from file and env. Env var overrides use prefix
// BUTTERFLIES_, e.g. BUTTERFLIES_DATA_SEED. A missing file is not an error.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	if p := os.Getenv(envConfig); p != "" {
		v.SetConfigFile(p)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "butterflies"))
		}
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("data.seed", d.Data.Seed)
	v.SetDefault("data.clip_low", d.Data.ClipLow)
	v.SetDefault("data.clip_high", d.Data.ClipHigh)
	v.SetDefault("data.jitter", d.Data.Jitter)
	v.SetDefault("data.significant_probability", d.Data.SignificantProbability)
	groups := make([]map[string]any, 0, len(d.Data.Groups))
	for _, g := range d.Data.Groups {
		groups = append(groups, map[string]any{"name": g.Name, "count": g.Count, "mean": g.Mean, "spread": g.Spread})
	}
	v.SetDefault("data.groups", groups)
	v.SetDefault("filter.range_low", d.Filter.RangeLow)
	v.SetDefault("filter.range_high", d.Filter.RangeHigh)
	v.SetDefault("filter.significant_only", d.Filter.SignificantOnly)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.caption", d.UI.Caption)
	v.SetDefault("ui.chart_height", d.UI.ChartHeight)
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if len(c.Data.Groups) == 0 {
		return fmt.Errorf("%w: data.groups is empty", ErrInvalidConfig)
	}
	for i, g := range c.Data.Groups {
		if g.Count < 0 {
			return fmt.Errorf("%w: data.groups[%d] count %d is negative", ErrInvalidConfig, i, g.Count)
		}
		if g.Spread < 0 {
			return fmt.Errorf("%w: data.groups[%d] spread %v is negative", ErrInvalidConfig, i, g.Spread)
		}
	}
	if c.Data.ClipLow >= c.Data.ClipHigh {
		return fmt.Errorf("%w: clip_low %v must be below clip_high %v", ErrInvalidConfig, c.Data.ClipLow, c.Data.ClipHigh)
	}
	if c.Data.Jitter < 0 {
		return fmt.Errorf("%w: jitter %v is negative", ErrInvalidConfig, c.Data.Jitter)
	}
	if p := c.Data.SignificantProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: significant_probability %v outside [0, 1]", ErrInvalidConfig, p)
	}
	if c.UI.ChartHeight <= 0 {
		return fmt.Errorf("%w: ui.chart_height must be positive", ErrInvalidConfig)
	}
	return nil
}

// Params converts the data section into generator parameters.
func (c Config) Params() dataset.Params {
	groups := make([]dataset.Group, 0, len(c.Data.Groups))
	for _, g := range c.Data.Groups {
		groups = append(groups, dataset.Group{Name: g.Name, Count: g.Count, Mean: g.Mean, Spread: g.Spread})
	}
	return dataset.Params{
		Groups:                 groups,
		ClipLow:                c.Data.ClipLow,
		ClipHigh:               c.Data.ClipHigh,
		JitterSpread:           c.Data.Jitter,
		SignificantProbability: c.Data.SignificantProbability,
	}
}

// Criteria converts the filter section into the dashboard's opening filter.
func (c Config) Criteria() dataset.Criteria {
	return dataset.Criteria{Low: c.Filter.RangeLow, High: c.Filter.RangeHigh, SignificantOnly: c.Filter.SignificantOnly}
}
