package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestLengthRange(t *testing.T) {
	cases := []struct {
		name   string
		cfg    Config
		lo, hi int
		err    error
	}{
		{"defaults", Default(), 1, DefaultMaxLength, nil},
		{"exact", Config{Length: intp(4), MinLength: 1}, 4, 4, nil},
		{"exact ignores min", Config{Length: intp(2), MinLength: 3}, 2, 2, nil},
		{"max", Config{MaxLength: intp(6), MinLength: 2}, 2, 6, nil},
		{"min above default max", Config{MinLength: 7}, 0, 0, ErrInvalidLengthRange},
		{"conflict", Config{Length: intp(4), MaxLength: intp(6), MinLength: 1}, 0, 0, ErrConflictingLengthParams},
		{"inverted", Config{MaxLength: intp(2), MinLength: 5}, 0, 0, ErrInvalidLengthRange},
		{"zero exact", Config{Length: intp(0)}, 0, 0, ErrZeroLength},
		{"zero min", Config{MaxLength: intp(3), MinLength: 0}, 0, 0, ErrZeroLength},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lo, hi, err := c.cfg.LengthRange()
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.lo, lo)
			assert.Equal(t, c.hi, hi)
		})
	}
}

func TestLengthRangeErrorCarriesBounds(t *testing.T) {
	_, _, err := Config{MaxLength: intp(2), MinLength: 5}.LengthRange()
	var lre *LengthRangeError
	require.True(t, errors.As(err, &lre))
	assert.Equal(t, 5, lre.Min)
	assert.Equal(t, 2, lre.Max)
	assert.Contains(t, err.Error(), "5")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
archive: secret.zip
charsets: [digit]
max_length: 6
skip_dictionary: true
workers: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret.zip", cfg.ArchivePath)
	assert.Equal(t, []string{"digit"}, cfg.Charsets)
	require.NotNil(t, cfg.MaxLength)
	assert.Equal(t, 6, *cfg.MaxLength)
	assert.Nil(t, cfg.Length)
	assert.Equal(t, 1, cfg.MinLength)
	assert.True(t, cfg.SkipDictionary)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("charsets: [unterminated\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
