// Package config holds the settings of one cracking run and resolves the
// password length range they describe.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxLength bounds brute force when neither length nor max_length is set.
const DefaultMaxLength = 5

var (
	ErrConflictingLengthParams = errors.New("length and max_length are mutually exclusive")
	ErrInvalidLengthRange      = errors.New("invalid length range")
	ErrZeroLength              = errors.New("password length must be at least 1")
)

// LengthRangeError reports a minimum above the maximum.
type LengthRangeError struct {
	Min, Max int
}

func (e *LengthRangeError) Error() string {
	return fmt.Sprintf("min length %d is greater than max length %d", e.Min, e.Max)
}

func (e *LengthRangeError) Is(target error) bool { return target == ErrInvalidLengthRange }

type Config struct {
	ArchivePath    string   `yaml:"archive"`
	Dictionary     string   `yaml:"dictionary"`
	Charsets       []string `yaml:"charsets"`
	Length         *int     `yaml:"length"`
	MaxLength      *int     `yaml:"max_length"`
	MinLength      int      `yaml:"min_length"`
	SkipDictionary bool     `yaml:"skip_dictionary"`
	Workers        int      `yaml:"workers"`
}

func Default() Config {
	return Config{
		Charsets:  []string{"lower", "upper", "digit"},
		MinLength: 1,
	}
}

// Load reads a YAML file over Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LengthRange returns the inclusive brute-force length range. An exact
// length fixes both ends; otherwise the range is MinLength..MaxLength, with
// DefaultMaxLength standing in for an unset maximum.
func (c Config) LengthRange() (lo, hi int, err error) {
	if c.Length != nil && c.MaxLength != nil {
		return 0, 0, ErrConflictingLengthParams
	}
	switch {
	case c.Length != nil:
		lo, hi = *c.Length, *c.Length
	case c.MaxLength != nil:
		lo, hi = c.MinLength, *c.MaxLength
	default:
		lo, hi = c.MinLength, DefaultMaxLength
	}
	if lo > hi {
		return 0, 0, &LengthRangeError{Min: lo, Max: hi}
	}
	if lo < 1 {
		return 0, 0, ErrZeroLength
	}
	return lo, hi, nil
}
