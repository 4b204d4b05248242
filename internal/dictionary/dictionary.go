// Package dictionary manages the self-learning password list: a plain text
// file, one password per line, where lines starting with '#' are comments.
// Every operation reopens the file; there is no in-memory cache.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	commentPrefix = "#"
	bom           = "\ufeff"
	maxLineBytes  = 1 << 20
)

var ErrUnstorablePassword = errors.New("password cannot be stored in a dictionary file")

// DefaultPath returns $HOME/.archive_cracker/dictionary.txt.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".archive_cracker", "dictionary.txt"), nil
}

// EnsureExists creates the dictionary at path, seeded with the built-in
// list, unless a file is already there.
func EnsureExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dictionary directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create dictionary: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# archivecrack password dictionary")
	fmt.Fprintln(w, "# One password per line; lines starting with # are comments.")
	fmt.Fprintln(w, "# Passwords recovered by successful runs are appended automatically.")
	fmt.Fprintln(w, "# Add your own likely passwords here to find them before brute force.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# === built-in common passwords ===")
	for _, p := range seedPasswords {
		fmt.Fprintln(w, p)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# === learned passwords ===")

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write dictionary: %w", err)
	}
	return f.Close()
}

// Load returns every password line of the file in order, duplicates included.
func Load(path string) ([]string, error) {
	var out []string
	err := scan(path, func(line string) { out = append(out, line) })
	return out, err
}

// LoadUnique is Load with duplicates removed, keeping first-seen order.
func LoadUnique(path string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	err := scan(path, func(line string) {
		if _, dup := seen[line]; dup {
			return
		}
		seen[line] = struct{}{}
		out = append(out, line)
	})
	return out, err
}

func scan(path string, fn func(string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	first := true
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, bom)
			first = false
		}
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}
	return nil
}

// Append adds password to the file unless it is already listed. It reports
// whether the file changed.
func Append(path, password string) (bool, error) {
	if password == "" || strings.HasPrefix(password, commentPrefix) ||
		strings.ContainsAny(password, "\r\n") {
		return false, ErrUnstorablePassword
	}

	existing, err := Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return false, err
	case slices.Contains(existing, password):
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("open dictionary for append: %w", err)
	}
	defer f.Close()

	entry := password + "\n"
	if missing, err := lacksTrailingNewline(f); err != nil {
		return false, err
	} else if missing {
		entry = "\n" + entry
	}
	if _, err := f.WriteString(entry); err != nil {
		return false, fmt.Errorf("append to dictionary: %w", err)
	}
	return true, nil
}

func lacksTrailingNewline(f *os.File) (bool, error) {
	st, err := f.Stat()
	if err != nil {
		return false, err
	}
	if st.Size() == 0 {
		return false, nil
	}
	var last [1]byte
	if _, err := f.ReadAt(last[:], st.Size()-1); err != nil && err != io.EOF {
		return false, err
	}
	return last[0] != '\n', nil
}

// Store binds the operations to one file.
type Store struct {
	Path string
}

func (s Store) EnsureExists() error { return EnsureExists(s.Path) }

func (s Store) LoadUnique() ([]string, error) { return LoadUnique(s.Path) }

func (s Store) Append(password string) (bool, error) { return Append(s.Path, password) }

// Exists reports whether the backing file is present.
func (s Store) Exists() bool {
	st, err := os.Stat(s.Path)
	return err == nil && !st.IsDir()
}
