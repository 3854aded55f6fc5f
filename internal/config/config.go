// Package config loads the collisions command's settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kerem-kaynak/feature-collisions/pkg/phonology"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = "collisions.toml"

// Config holds every setting of a collision analysis run.
type Config struct {
	Matrix         string            `toml:"matrix"`
	Catalog        string            `toml:"catalog"`
	Report         string            `toml:"report"`
	SymbolColumn   string            `toml:"symbol_column"`
	Targets        []string          `toml:"targets"`
	IgnoreFeatures []string          `toml:"ignore_features"`
	CacheSize      int               `toml:"cache_size"`
	Tokens         map[string]string `toml:"tokens"`
}

// Default returns the settings used when no config file is present. Tokens
// is left nil so that a [tokens] table replaces the default token table
// instead of being merged into it.
func Default() Config {
	return Config{
		Matrix:       "data/features.csv",
		Catalog:      "data/diacritics.yaml",
		Report:       phonology.DefaultReportPath,
		SymbolColumn: phonology.DefaultSymbolColumn,
		CacheSize:    phonology.DefaultCacheSize,
	}
}

// Load reads path over the defaults. An empty path falls back to
// DefaultFile, and a missing DefaultFile is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail late in the run.
func (c Config) Validate() error {
	if c.Matrix == "" {
		return errors.New("config: matrix path is empty")
	}
	if c.Catalog == "" {
		return errors.New("config: catalog path is empty")
	}
	if c.Report == "" {
		return errors.New("config: report path is empty")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache_size %d is negative", c.CacheSize)
	}
	_, err := c.TokenTable()
	return err
}

// TokenTable converts the [tokens] section, which maps a raw cell value to
// "+", "-" or "0", into a phonology.TokenTable.
func (c Config) TokenTable() (phonology.TokenTable, error) {
	if len(c.Tokens) == 0 {
		return phonology.DefaultTokens(), nil
	}
	out := make(phonology.TokenTable, len(c.Tokens))
	for token, value := range c.Tokens {
		switch value {
		case "+":
			out[token] = phonology.Positive
		case "-":
			out[token] = phonology.Negative
		case "0":
			out[token] = phonology.Unspecified
		default:
			return nil, fmt.Errorf("config: token %q maps to %q, want +, - or 0", token, value)
		}
	}
	return out, nil
}

// Phonology builds the library configuration for an analysis run.
func (c Config) Phonology() (phonology.Config, error) {
	tokens, err := c.TokenTable()
	if err != nil {
		return phonology.Config{}, err
	}
	cfg := phonology.DefaultConfig()
	cfg.SymbolColumn = c.SymbolColumn
	cfg.Tokens = tokens
	cfg.IgnoreFeatures = c.IgnoreFeatures
	cfg.CacheSize = c.CacheSize
	return cfg, nil
}
