package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/catenc/blob"
	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/collision"
)

const (
	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
)

// EnvPrefix is the prefix of environment variables overriding config values,
// e.g. CATENC_UNSEEN_POLICY or CATENC_PARALLELISM.
const EnvPrefix = "CATENC"

// Config describes the columns to encode and how their encoders are fitted and stored.
type Config struct {
	Columns []ColumnConfig `mapstructure:"columns" yaml:"columns"`
	// UnseenPolicy is one of "reserved", "sentinel" or "zero".
	UnseenPolicy string `mapstructure:"unseen_policy" yaml:"unseen_policy"`
	// MaxCategories caps the categories per column. Zero means no cap.
	MaxCategories int `mapstructure:"max_categories" yaml:"max_categories,omitempty"`
	// MinCategories fails a column fit with fewer categories.
	MinCategories int `mapstructure:"min_categories" yaml:"min_categories,omitempty"`
	// Compression is one of "none", "zstd", "s2" or "lz4".
	Compression string `mapstructure:"compression" yaml:"compression"`
	// ByteOrder is "little" or "big".
	ByteOrder string `mapstructure:"byte_order" yaml:"byte_order"`
	// Parallelism bounds the number of columns fitted at once. Zero means one
	// goroutine per column.
	Parallelism int `mapstructure:"parallelism" yaml:"parallelism,omitempty"`
}

// ColumnConfig is the file form of a column.Binding.
type ColumnConfig struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Source string `mapstructure:"source" yaml:"source,omitempty"`
	Type   string `mapstructure:"type" yaml:"type"`
}

// DefaultConfig returns a config with no columns and default settings.
func DefaultConfig() *Config {
	return &Config{
		UnseenPolicy: "reserved",
		Compression:  "none",
		ByteOrder:    ByteOrderLittle,
	}
}

// Bindings parses the column list. Output names must be unique.
func (c *Config) Bindings() ([]column.Binding, error) {
	tracker := collision.NewTracker()
	bindings := make([]column.Binding, 0, len(c.Columns))

	for i, cc := range c.Columns {
		st, err := format.ParseSourceType(cc.Type)
		if err != nil {
			return nil, fmt.Errorf("columns[%d] %q: %w", i, cc.Name, err)
		}

		b := column.Binding{Name: cc.Name, Source: cc.Source, Type: st}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("columns[%d]: %w", i, err)
		}
		if err := tracker.Track(b.Name); err != nil {
			return nil, fmt.Errorf("columns[%d]: %w", i, err)
		}

		bindings = append(bindings, b)
	}

	return bindings, nil
}

// Validate checks every field of the config.
func (c *Config) Validate() error {
	if len(c.Columns) == 0 {
		return fmt.Errorf("%w: no columns configured", errs.ErrInvalidBinding)
	}

	if _, err := c.Bindings(); err != nil {
		return err
	}

	_, err := c.columnOptions()

	return err
}

// columnOptions converts the settings to column options.
func (c *Config) columnOptions() ([]column.Option, error) {
	policy, err := format.ParseUnseenPolicy(c.UnseenPolicy)
	if err != nil {
		return nil, err
	}

	comp, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return nil, err
	}

	if c.MaxCategories < 0 || c.MinCategories < 0 {
		return nil, fmt.Errorf("%w: negative category limit", errs.ErrInvalidOption)
	}
	if c.MaxCategories > 0 && c.MinCategories > c.MaxCategories {
		return nil, fmt.Errorf("%w: min_categories %d exceeds max_categories %d",
			errs.ErrInvalidOption, c.MinCategories, c.MaxCategories)
	}
	if c.Parallelism < 0 {
		return nil, fmt.Errorf("%w: negative parallelism %d", errs.ErrInvalidOption, c.Parallelism)
	}

	fitOpts := []category.Option{category.WithUnseenPolicy(policy)}
	if c.MaxCategories > 0 {
		fitOpts = append(fitOpts, category.WithMaxCategories(c.MaxCategories))
	}
	if c.MinCategories > 0 {
		fitOpts = append(fitOpts, category.WithMinCategories(c.MinCategories))
	}

	blobOpts := []blob.EncoderOption{blob.WithCompression(comp)}
	switch strings.ToLower(c.ByteOrder) {
	case "", ByteOrderLittle:
		blobOpts = append(blobOpts, blob.WithLittleEndian())
	case ByteOrderBig:
		blobOpts = append(blobOpts, blob.WithBigEndian())
	default:
		return nil, fmt.Errorf("%w: byte order %q", errs.ErrInvalidOption, c.ByteOrder)
	}

	return []column.Option{
		column.WithFitOptions(fitOpts...),
		column.WithBlobOptions(blobOpts...),
	}, nil
}

// LoadConfig reads a YAML config file. Scalar settings can be overridden by
// environment variables prefixed with EnvPrefix.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("unseen_policy", defaults.UnseenPolicy)
	v.SetDefault("compression", defaults.Compression)
	v.SetDefault("byte_order", defaults.ByteOrder)
	v.SetDefault("max_categories", 0)
	v.SetDefault("min_categories", 0)
	v.SetDefault("parallelism", 0)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
