package config

import (
	"errors"
	"fmt"

	"github.com/mstoykov/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// EnvPrefix prefixes every environment variable read by LoadEnv, e.g.
// FREQFILTER_CUTOFF.
const EnvPrefix = "freqfilter"

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	MinPrefixLen int    `toml:"min_prefix_len" envconfig:"MIN_PREFIX_LEN"`
	MaxPrefixLen int    `toml:"max_prefix_len" envconfig:"MAX_PREFIX_LEN"`
	Cutoff       int    `toml:"cutoff" envconfig:"CUTOFF"`
	Cutoffs      []int  `toml:"cutoffs" envconfig:"CUTOFFS"`
	Format       string `toml:"format" envconfig:"FORMAT"`
	LogLevel     string `toml:"log_level" envconfig:"LOG_LEVEL"`
}

func NewConfig() *Config {
	return &Config{
		MinPrefixLen: 1,
		MaxPrefixLen: 1,
		Cutoff:       1,
		Format:       FormatText,
		LogLevel:     logrus.InfoLevel.String(),
	}
}

// Load overlays the TOML file at path onto c.
func (c *Config) Load(fs afero.Fs, path string) error {
	file, err := fs.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	err = toml.NewDecoder(file).Decode(c)
	if err != nil {
		return fmt.Errorf("could not decode config %s: %w", path, err)
	}

	return nil
}

// LoadEnv overlays the environment variables found through lookup onto c.
func (c *Config) LoadEnv(lookup func(key string) (string, bool)) error {
	if err := envconfig.Process(EnvPrefix, c, lookup); err != nil {
		return fmt.Errorf("could not read environment: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.MinPrefixLen <= 0 {
		return fmt.Errorf("%w: min_prefix_len must be positive, got %d", ErrInvalidConfig, c.MinPrefixLen)
	}
	if c.MaxPrefixLen < c.MinPrefixLen {
		return fmt.Errorf("%w: max_prefix_len %d is less than min_prefix_len %d",
			ErrInvalidConfig, c.MaxPrefixLen, c.MinPrefixLen)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("%w: cutoff cannot be negative, got %d", ErrInvalidConfig, c.Cutoff)
	}
	if n := c.MaxPrefixLen - c.MinPrefixLen + 1; len(c.Cutoffs) > 0 && len(c.Cutoffs) != n {
		return fmt.Errorf("%w: expected %d cutoffs, got %d", ErrInvalidConfig, n, len(c.Cutoffs))
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, c.Format)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}
