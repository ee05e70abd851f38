package inktag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inktag/inktag/internal/format"
	"github.com/inktag/inktag/internal/tagseq"
	"github.com/inktag/inktag/pkg/errors"
)

// Config controls a Session. Zero values fall back to defaults.
type Config struct {
	// StorePath is the persisted record file. Defaults to
	// $HOME/.inktag/record.json.
	StorePath string `json:"storePath" yaml:"storePath" toml:"storePath" properties:"storePath,default="`

	// Categories are the legend names, one per category index. Exactly two.
	Categories []string `json:"categories" yaml:"categories" toml:"categories" properties:"categories,default=amber;indigo"`

	// Seed pins category assignment for reproducible runs. 0 means
	// time-seeded.
	Seed int64 `json:"seed" yaml:"seed" toml:"seed" properties:"seed,default=0"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		StorePath:  defaultStorePath(),
		Categories: []string{"amber", "indigo"},
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".inktag", "record.json")
}

// LoadConfig reads the config file at path, dispatching the decoder on the
// file extension (json, yaml, yml, toml, properties). Missing fields keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	ft, err := format.Get(ext)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w / %w", path, err, errors.ErrInvalidConfig)
	}

	cfg := DefaultConfig()

	err = ft.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w / %w", path, err, errors.ErrInvalidConfig)
	}

	// The properties decoder overwrites untagged-default fields with zero
	// values; restore built-in defaults for anything left unset.
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultConfig().Categories
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("empty storePath (%w)", errors.ErrInvalidConfig)
	}

	if len(c.Categories) != tagseq.CategoryCount {
		return fmt.Errorf("need exactly %d categories, got %d (%w)",
			tagseq.CategoryCount, len(c.Categories), errors.ErrInvalidConfig)
	}

	return nil
}
