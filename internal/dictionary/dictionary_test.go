package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadUniqueDeduplicates(t *testing.T) {
	path := writeFile(t, "abc\n123\nabc\n")
	got, err := LoadUnique(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "123"}, got)

	all, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "123", "abc"}, all)
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeFile(t, "\ufeff# header\r\n\r\nhunter2\r\n  # indented is a password\n#x\nlast")
	got, err := LoadUnique(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hunter2", "  # indented is a password", "last"}, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadUnique(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureExistsSeedsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "dictionary.txt")
	require.NoError(t, EnsureExists(path))

	got, err := LoadUnique(path)
	require.NoError(t, err)
	assert.Equal(t, seedPasswords, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "#"))

	require.NoError(t, os.WriteFile(path, []byte("mine\n"), 0o644))
	require.NoError(t, EnsureExists(path))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mine\n", string(raw))
}

func TestSeedHasNoDuplicatesOrComments(t *testing.T) {
	assert.GreaterOrEqual(t, len(seedPasswords), 1000)
	seen := map[string]bool{}
	for _, p := range seedPasswords {
		assert.False(t, seen[p], p)
		assert.NotEmpty(t, p)
		assert.False(t, strings.HasPrefix(p, "#"))
		seen[p] = true
	}
}

func TestAppend(t *testing.T) {
	path := writeFile(t, "# c\nabc\n")

	added, err := Append(path, "s3cret")
	require.NoError(t, err)
	assert.True(t, added)

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# c\nabc\ns3cret\n", string(before))

	added, err = Append(path, "s3cret")
	require.NoError(t, err)
	assert.False(t, added)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppendWithoutTrailingNewline(t *testing.T) {
	path := writeFile(t, "abc")
	added, err := Append(path, "xyz")
	require.NoError(t, err)
	assert.True(t, added)

	got, err := LoadUnique(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "xyz"}, got)
}

func TestAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.txt")
	added, err := Append(path, "first")
	require.NoError(t, err)
	assert.True(t, added)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(raw))
}

func TestAppendRejectsUnstorable(t *testing.T) {
	path := writeFile(t, "")
	for _, pw := range []string{"", "#hash", "two\nlines"} {
		_, err := Append(path, pw)
		assert.ErrorIs(t, err, ErrUnstorablePassword, pw)
	}
}

func TestStore(t *testing.T) {
	s := Store{Path: filepath.Join(t.TempDir(), "d.txt")}
	assert.False(t, s.Exists())
	require.NoError(t, s.EnsureExists())
	assert.True(t, s.Exists())

	added, err := s.Append("learned-one")
	require.NoError(t, err)
	assert.True(t, added)

	words, err := s.LoadUnique()
	require.NoError(t, err)
	assert.Equal(t, "learned-one", words[len(words)-1])
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/tmp/home-for-test")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/home-for-test", ".archive_cracker", "dictionary.txt"), p)
}
